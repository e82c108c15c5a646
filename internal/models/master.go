package models

// Master data is reference content served as-is; it is never persisted.

type MasterMetric struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Helper string `json:"helper,omitempty" yaml:"helper"`
}

type MasterRecord struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Status    string `json:"status" yaml:"status"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

type MasterAction struct {
	Label   string `json:"label" yaml:"label"`
	Href    string `json:"href,omitempty" yaml:"href"`
	Variant string `json:"variant,omitempty" yaml:"variant"` // contained / outlined
}

type MasterCategory struct {
	Key         string         `json:"key" yaml:"key"`
	Label       string         `json:"label" yaml:"label"`
	Description string         `json:"description" yaml:"description"`
	Metrics     []MasterMetric `json:"metrics" yaml:"metrics"`
	Records     []MasterRecord `json:"records" yaml:"records"`
	Actions     []MasterAction `json:"actions" yaml:"actions"`
}
