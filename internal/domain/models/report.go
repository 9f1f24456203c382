package models

import "time"

// ReportFormat is the binary format a report is rendered in.
type ReportFormat string

const (
	ReportPDF   ReportFormat = "pdf"
	ReportExcel ReportFormat = "excel"
)

// Extension returns the file extension used for downloads.
func (f ReportFormat) Extension() string {
	if f == ReportExcel {
		return "xlsx"
	}
	return string(f)
}

// ReportRequest selects a report and its filters.
type ReportRequest struct {
	Type     string       `json:"-" validate:"required,oneof=traceability inventory movements growth"`
	Format   ReportFormat `json:"format" validate:"required,oneof=pdf excel"`
	Scope    string       `json:"-"`
	FarmID   string       `json:"farm_id,omitempty"`
	AnimalID string       `json:"animal_id,omitempty"`
	From     *time.Time   `json:"date_from,omitempty"`
	To       *time.Time   `json:"date_to,omitempty"`
}

// Report is a rendered report ready for download.
type Report struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// MLStatus is the backend report on loaded estimation models.
type MLStatus struct {
	Loaded       bool              `json:"loaded"`
	ModelVersion string            `json:"model_version,omitempty"`
	Models       map[string]string `json:"models,omitempty"`
}

// SyncResult summarises a batch sync call.
type SyncResult struct {
	Success   bool   `json:"success"`
	Synced    int    `json:"synced_count"`
	Failed    int    `json:"failed_count"`
	Conflicts int    `json:"conflicts_count"`
	Message   string `json:"message,omitempty"`
}

// SyncHealth is the sync subsystem health probe.
type SyncHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
