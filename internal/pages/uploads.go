package pages

import (
	"net/url"

	"lull-backoffice/internal/filter"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"
)

type UploadQuery struct {
	Statuses []models.UploadStatus `json:"status,omitempty"`
}

func ParseUploadQuery(q url.Values) UploadQuery {
	return UploadQuery{Statuses: list[models.UploadStatus](q, "status")}
}

type UploadRow struct {
	models.UploadHistoryItem
	Status presentation.Chip `json:"statusChip"`
}

type UploadView struct {
	Query  UploadQuery                 `json:"query"`
	Rows   []UploadRow                 `json:"rows"`
	Counts map[models.UploadStatus]int `json:"counts"`
}

// BuildUploads counts every upload per status and lists the ones matching
// the status filter.
func BuildUploads(items []models.UploadHistoryItem, q UploadQuery) UploadView {
	byStatus := func(u models.UploadHistoryItem) models.UploadStatus { return u.Status }
	rows := filter.Apply(items, filter.In(byStatus, q.Statuses))

	view := UploadView{
		Query:  q,
		Rows:   make([]UploadRow, 0, len(rows)),
		Counts: filter.CountBy(items, byStatus, models.UploadStatuses...),
	}
	for _, u := range rows {
		view.Rows = append(view.Rows, UploadRow{UploadHistoryItem: u, Status: presentation.UploadStatus.Lookup(u.Status)})
	}
	return view
}
