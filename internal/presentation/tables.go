package presentation

import "lull-backoffice/internal/models"

var AttendanceApproval = NewTable(models.ApprovalPending, map[models.AttendanceApprovalStatus]Chip{
	models.ApprovalDraft:    {Label: "下書き", Color: ColorDefault, Variant: VariantOutlined},
	models.ApprovalPending:  {Label: "承認待ち", Color: ColorDefault, Variant: VariantOutlined},
	models.ApprovalApproved: {Label: "承認済み", Color: ColorSuccess, Variant: VariantFilled},
	models.ApprovalRejected: {Label: "差戻し", Color: ColorError, Variant: VariantFilled},
})

var AttendanceMatching = NewTable(models.MatchingUnverified, map[models.AttendanceMatchingStatus]Chip{
	models.MatchingUnverified: {Label: "未照合", Color: ColorWarning},
	models.MatchingMatched:    {Label: "照合済み", Color: ColorSuccess},
	models.MatchingMismatch:   {Label: "不一致", Color: ColorError},
})

var AlertMeta = NewTable(models.AlertAbsent, map[models.AlertType]Chip{
	models.AlertAbsent:     {Label: "未出勤", Color: ColorWarning, Status: "要確認"},
	models.AlertWorkError:  {Label: "勤務登録エラー", Color: ColorError, Status: "差戻し"},
	models.AlertPTOPending: {Label: "有給申請 未承認", Color: ColorPrimary, Status: "承認待ち"},
	models.AlertOTPending:  {Label: "残業申請 未承認", Color: ColorSecondary, Status: "承認待ち"},
})

// Anything that is neither pending nor approved renders as 差戻し.
var PTOStatus = NewTable(models.RequestRejected, map[models.RequestStatus]Chip{
	models.RequestPending:  {Label: "未承認", Color: ColorPrimary},
	models.RequestApproved: {Label: "承認", Color: ColorSuccess},
	models.RequestRejected: {Label: "差戻し", Color: ColorError},
})

var OTStatus = NewTable(models.RequestRejected, map[models.RequestStatus]Chip{
	models.RequestPending:  {Label: "未承認", Color: ColorSecondary},
	models.RequestApproved: {Label: "承認", Color: ColorSuccess},
	models.RequestRejected: {Label: "差戻し", Color: ColorError},
})

var BillingApproval = NewTable(models.BillingDraft, map[models.BillingApprovalStatus]Chip{
	models.BillingDraft:   {Label: "ドラフト", Color: ColorDefault, Variant: VariantOutlined},
	models.BillingPending: {Label: "承認待ち", Color: ColorWarning, Variant: VariantFilled},
	models.BillingIssued:  {Label: "発行済み", Color: ColorPrimary, Variant: VariantFilled},
	models.BillingSent:    {Label: "送付済み", Color: ColorPrimary, Variant: VariantFilled},
	models.BillingPaid:    {Label: "入金済み", Color: ColorSuccess, Variant: VariantFilled},
})

var PaymentStatus = NewTable(models.PaymentUnpaid, map[models.PaymentStatus]Chip{
	models.PaymentUnpaid:  {Label: "未入金", Color: ColorDefault, Variant: VariantOutlined},
	models.PaymentPaid:    {Label: "入金済み", Color: ColorSuccess, Variant: VariantFilled},
	models.PaymentOverdue: {Label: "入金遅延", Color: ColorError, Variant: VariantFilled},
})

var ContractStatus = NewTable(models.ContractActive, map[models.ContractStatus]Chip{
	models.ContractActive:   {Label: "稼働中", Color: ColorSuccess, Variant: VariantFilled},
	models.ContractExpiring: {Label: "更新期限接近", Color: ColorWarning, Variant: VariantFilled},
	models.ContractDraft:    {Label: "ドラフト", Color: ColorDefault, Variant: VariantOutlined},
})

var CustomerStatus = NewTable(models.CustomerProspect, map[models.CustomerStatus]Chip{
	models.CustomerProspect: {Label: "見込み", Color: ColorPrimary},
	models.CustomerActive:   {Label: "取引中", Color: ColorSuccess},
	models.CustomerInactive: {Label: "非取引", Color: ColorWarning},
})

var UploadStatus = NewTable(models.UploadProcessing, map[models.UploadStatus]Chip{
	models.UploadProcessing: {Label: "解析中", Color: ColorWarning},
	models.UploadCompleted:  {Label: "完了", Color: ColorSuccess},
	models.UploadError:      {Label: "エラー", Color: ColorError},
})

type MilestoneState string

var MilestoneStatus = NewTable(MilestoneState("追い込み"), map[MilestoneState]Chip{
	"順調":   {Label: "順調", Color: ColorSuccess},
	"要調整":  {Label: "要調整", Color: ColorWarning},
	"追い込み": {Label: "追い込み", Color: ColorPrimary},
})

type PeriodKind string

const (
	PeriodActual   PeriodKind = "actual"
	PeriodForecast PeriodKind = "forecast"
)

var HalfYearPeriod = NewTable(PeriodActual, map[PeriodKind]Chip{
	PeriodActual:   {Label: "実績", Color: ColorPrimary, Variant: VariantFilled},
	PeriodForecast: {Label: "予測", Color: ColorWarning, Variant: VariantOutlined},
})
