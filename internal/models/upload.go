package models

type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadError      UploadStatus = "error"
)

var UploadStatuses = []UploadStatus{UploadProcessing, UploadCompleted, UploadError}

type UploadHistoryItem struct {
	ID         string       `gorm:"primaryKey;size:32" json:"id" yaml:"id"`
	FileName   string       `gorm:"size:255" json:"fileName" yaml:"fileName"`
	UploadedAt string       `gorm:"size:32" json:"uploadedAt" yaml:"uploadedAt"`
	Uploader   string       `gorm:"size:255" json:"uploader" yaml:"uploader"`
	Status     UploadStatus `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	Message    string       `gorm:"type:text" json:"message,omitempty" yaml:"message"`
}
