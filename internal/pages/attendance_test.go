package pages

import (
	"net/url"
	"testing"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendanceInput(t *testing.T) AttendanceInput {
	ds := loadSeed(t)
	return AttendanceInput{
		Records:     ds.Attendance,
		Alerts:      ds.Alerts,
		PTORequests: ds.PTORequests,
		OTRequests:  ds.OTRequests,
	}
}

func rowID(r AttendanceRow) string { return r.ID }

func TestParseAttendanceQuery(t *testing.T) {
	q := ParseAttendanceQuery(url.Values{
		"approval":   {"pending,,rejected"},
		"alert":      {"pto_pending"},
		"pto_status": {"all"},
		"ot_status":  {"pending"},
	})

	assert.Equal(t, []models.AttendanceApprovalStatus{models.ApprovalPending, models.ApprovalRejected}, q.Approvals)
	assert.Equal(t, filter.All, q.Project)
	assert.Equal(t, filter.All, q.AlertType, "only absent and work_error narrow the grid")
	assert.Equal(t, models.RequestStatuses, q.PTOStatuses)
	assert.Equal(t, []models.RequestStatus{models.RequestPending}, q.OTStatuses)
}

func TestBuildAttendanceDefaults(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{}), refDate)

	assert.Equal(t, "2025-09", view.CurrentMonth)
	assert.Equal(t, []string{"AR-2409-0001", "AR-2409-0002", "AR-2409-0003"}, ids(view.Rows, rowID))
	assert.Equal(t, []Option{
		{Value: "PJ-4589", Label: "PJ-4589 / LULL販売管理刷新プロジェクト"},
		{Value: "PJ-4633", Label: "PJ-4633 / クラウド請求高度化PJT"},
		{Value: "PJ-4710", Label: "PJ-4710 / 労務DX基盤構築"},
	}, view.ProjectOptions)

	// 山田 太郎 has no attendance row, so AL-1 and AL-4 are out of scope.
	assert.Equal(t, map[models.AlertType]int{
		models.AlertAbsent:     1,
		models.AlertWorkError:  1,
		models.AlertPTOPending: 0,
		models.AlertOTPending:  1,
	}, view.AlertCounts)
	assert.Equal(t, []string{"AL-2", "AL-3", "AL-5"}, ids(view.Alerts, func(a AlertRow) string { return a.ID }))

	assert.Len(t, view.PTORequests, 2)
	assert.Len(t, view.OTRequests, 2)
	assert.Equal(t, "2.0", view.OTRequests[0].HoursLabel)
}

func TestBuildAttendanceRowLabels(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{}), refDate)
	require.Len(t, view.Rows, 3)

	first := view.Rows[0]
	assert.Equal(t, "2025年09月", first.WorkPeriodLabel)
	assert.Equal(t, "152.0", first.TotalWorkHoursLabel)
	assert.Equal(t, "￥941,600", first.ExpectedAmountLabel)
	assert.Equal(t, "承認待ち", first.Approval.Label)
	assert.Equal(t, "未照合", first.Matching.Label)
	assert.False(t, first.AmountFlagged)

	assert.True(t, view.Rows[2].AmountFlagged)
	assert.Equal(t, "差戻し", view.Rows[2].Approval.Label)
}

func TestBuildAttendanceApprovalFilter(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{"approval": {"approved"}}), refDate)
	assert.Equal(t, []string{"AR-2409-0002"}, ids(view.Rows, rowID))

	view = BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{"approval": {"pending,rejected"}}), refDate)
	assert.Equal(t, []string{"AR-2409-0001", "AR-2409-0003"}, ids(view.Rows, rowID))
	assert.Equal(t, 0, view.AlertCounts[models.AlertAbsent])
	assert.Equal(t, 1, view.AlertCounts[models.AlertWorkError])
	assert.Equal(t, 0, view.AlertCounts[models.AlertOTPending])
}

func TestBuildAttendanceAlertAndProjectFilters(t *testing.T) {
	in := attendanceInput(t)

	view := BuildAttendance(in, ParseAttendanceQuery(url.Values{"alert": {"absent"}}), refDate)
	assert.Equal(t, []string{"AR-2409-0002"}, ids(view.Rows, rowID))

	view = BuildAttendance(in, ParseAttendanceQuery(url.Values{"alert": {"work_error"}}), refDate)
	assert.Equal(t, []string{"AR-2409-0003"}, ids(view.Rows, rowID))

	view = BuildAttendance(in, ParseAttendanceQuery(url.Values{"project": {"PJ-4589"}}), refDate)
	assert.Equal(t, []string{"AR-2409-0001"}, ids(view.Rows, rowID))
	assert.Len(t, view.ProjectOptions, 3, "options come from the unfiltered rows")

	view = BuildAttendance(in, ParseAttendanceQuery(url.Values{"project": {"PJ-4589"}, "alert": {"absent"}}), refDate)
	assert.Empty(t, view.Rows)
}

func TestBuildAttendanceRequestStatusFilters(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{
		"pto_status": {"pending"},
		"ot_status":  {"approved"},
	}), refDate)

	assert.Equal(t, []string{"PTO-1"}, ids(view.PTORequests, func(r PTORow) string { return r.ID }))
	assert.Equal(t, "未承認", view.PTORequests[0].Chip.Label)
	assert.Equal(t, []string{"OT-2"}, ids(view.OTRequests, func(r OTRow) string { return r.ID }))
}

func TestBuildAttendanceEmptyUsesReferenceMonth(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{"approval": {"draft"}}), refDate)

	assert.Empty(t, view.Rows)
	assert.Equal(t, "2025-05", view.CurrentMonth)
	assert.Empty(t, view.Alerts)
	assert.Empty(t, view.PTORequests)
	for _, n := range view.AlertCounts {
		assert.Zero(t, n)
	}
}

func TestAlertSummaryNavigation(t *testing.T) {
	view := BuildAttendance(attendanceInput(t), ParseAttendanceQuery(url.Values{}), refDate)
	require.Len(t, view.AlertSummary, 4)

	byType := map[models.AlertType]AlertSummary{}
	for _, s := range view.AlertSummary {
		byType[s.Type] = s
	}
	assert.Equal(t, TabRecords, byType[models.AlertAbsent].Tab)
	assert.Equal(t, "/attendance?alert=absent", byType[models.AlertAbsent].Href)
	assert.Equal(t, "未出勤 1件", byType[models.AlertAbsent].Label)
	assert.Equal(t, TabPTO, byType[models.AlertPTOPending].Tab)
	assert.Equal(t, TabOT, byType[models.AlertOTPending].Tab)
	assert.Equal(t, "/attendance?ot_status=pending", byType[models.AlertOTPending].Href)
}

func TestCountAlertsIncludesEveryType(t *testing.T) {
	alerts := []models.AlertItem{
		{Type: models.AlertAbsent}, {Type: models.AlertAbsent},
		{Type: models.AlertWorkError}, {Type: models.AlertPTOPending},
	}
	assert.Equal(t, map[models.AlertType]int{
		models.AlertAbsent:     2,
		models.AlertWorkError:  1,
		models.AlertPTOPending: 1,
		models.AlertOTPending:  0,
	}, CountAlerts(alerts))
}
