package pages

import (
	"strconv"

	"lull-backoffice/internal/export"
	"lull-backoffice/internal/presentation"
)

// Export tables carry display labels so the downloaded file reads like the
// grid on screen.

func AttendanceTable(rows []AttendanceRow) export.Table {
	t := export.Table{
		Sheet: "勤怠",
		Headers: []string{
			"勤怠ID", "案件ID", "案件名", "社員ID", "氏名", "部署", "対象月",
			"総稼働時間", "残業時間", "深夜時間", "休日時間", "承認状況", "照合状況",
			"請求単価", "請求見込み額", "備考",
		},
	}
	for _, r := range rows {
		overtime, midnight, holiday := r.OvertimeHours, r.MidnightHours, r.HolidayHours
		unit := r.BillingUnitPrice
		t.Rows = append(t.Rows, []string{
			r.ID, r.ProjectID, r.ProjectName, r.EmployeeID, r.EmployeeName, r.Department,
			r.WorkPeriodLabel, r.TotalWorkHoursLabel,
			presentation.FormatHours(&overtime),
			presentation.FormatHours(&midnight),
			presentation.FormatHours(&holiday),
			r.Approval.Label, r.Matching.Label,
			presentation.FormatYen(&unit), r.ExpectedAmountLabel, r.ReconciliationNotes,
		})
	}
	return t
}

func BillingTable(rows []BillingRow) export.Table {
	t := export.Table{
		Sheet:   "請求",
		Headers: []string{"請求ID", "案件名", "請求先", "請求期間", "請求金額", "承認状況", "支払期日", "入金状況", "最新アクション"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ID, r.ProjectName, r.ClientName, r.BillingPeriod, r.AmountLabel,
			r.Approval.Label, r.PaymentDueDate, r.Payment.Label, r.LastAction,
		})
	}
	return t
}

func ContractTable(rows []ContractRow) export.Table {
	t := export.Table{
		Sheet:   "契約",
		Headers: []string{"契約ID", "顧客名", "案件名", "契約形態", "開始日", "終了日", "月額", "ステータス", "担当者"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ID, r.ClientName, r.ProjectName, r.ContractType, r.StartDate, r.EndDate,
			r.MonthlyAmountLabel, r.Status.Label, r.Manager,
		})
	}
	return t
}

func CustomerTable(rows []CustomerRow) export.Table {
	t := export.Table{
		Sheet:   "顧客",
		Headers: []string{"顧客ID", "顧客名", "業種", "担当部署", "セグメント", "ステータス", "担当者", "案件数", "MRR", "最終接点"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ID, r.Name, r.Industry, r.Department, string(r.Segment), r.Status.Label,
			r.Owner, strconv.Itoa(r.Projects), r.MRRLabel, r.LastActivity,
		})
	}
	return t
}
