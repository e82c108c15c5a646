package pages

import (
	"net/url"

	"lull-backoffice/internal/models"
)

type MasterView struct {
	Categories []Option              `json:"categories"`
	Selected   *models.MasterCategory `json:"selected"`
}

// BuildMaster selects the category named by the category parameter,
// falling back to the first one.
func BuildMaster(categories []models.MasterCategory, q url.Values) MasterView {
	view := MasterView{Categories: make([]Option, 0, len(categories))}
	for _, c := range categories {
		view.Categories = append(view.Categories, Option{Value: c.Key, Label: c.Label})
	}
	if len(categories) == 0 {
		return view
	}

	key := q.Get("category")
	selected := categories[0]
	for _, c := range categories {
		if c.Key == key {
			selected = c
			break
		}
	}
	view.Selected = &selected
	return view
}
