// Package seed loads the demo datasets the console starts with.
package seed

import (
	_ "embed"
	"fmt"

	"lull-backoffice/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

// Dataset is every record set the console serves.
type Dataset struct {
	Attendance  []models.AttendanceRecord  `yaml:"attendance"`
	Alerts      []models.AlertItem         `yaml:"alerts"`
	PTORequests []models.PTORequest        `yaml:"ptoRequests"`
	OTRequests  []models.OTRequest         `yaml:"otRequests"`
	Billing     []models.BillingRecord     `yaml:"billing"`
	Contracts   []models.ContractRecord    `yaml:"contracts"`
	Customers   []models.CustomerRecord    `yaml:"customers"`
	Uploads     []models.UploadHistoryItem `yaml:"uploads"`
	Master      []models.MasterCategory    `yaml:"master"`
	Dashboard   models.DashboardData       `yaml:"dashboard"`
}

// Default returns a freshly decoded copy of the embedded datasets.
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// Parse decodes a dataset document.
func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return &ds, nil
}
