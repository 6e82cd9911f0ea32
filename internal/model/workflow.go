package model

// WorkflowState is a numbered step in the session workflow.
type WorkflowState int

const (
	StateIntake  WorkflowState = iota // collecting doctor/patient/date
	StateCapture                      // collecting audio/document/text
	StateReview                       // report ready, edit/export allowed
)

func (s WorkflowState) String() string {
	switch s {
	case StateIntake:
		return "intake"
	case StateCapture:
		return "capture"
	case StateReview:
		return "review"
	default:
		return "unknown"
	}
}

// CaptureInput is the step-2 payload. At most one of AudioPath and
// DocumentPath is expected; ManualText wins over both when non-blank.
type CaptureInput struct {
	AudioPath    string
	DocumentPath string
	ManualText   string
}

// WorkflowSnapshot is the UI-facing view of the workflow after a
// transition. It carries everything a front end needs to render the
// current step.
type WorkflowSnapshot struct {
	State      string  `json:"state"`
	Step       int     `json:"step"`
	Progress   float64 `json:"progress"`
	Doctor     string  `json:"doctor,omitempty"`
	Patient    string  `json:"patient,omitempty"`
	Date       string  `json:"date,omitempty"`
	RecordID   int64   `json:"record_id,omitempty"`
	Visit      int     `json:"visit_number,omitempty"`
	Transcript string  `json:"transcript,omitempty"`
	Summary    string  `json:"summary,omitempty"`
	Markdown   string  `json:"markdown,omitempty"`
	ReportPath string  `json:"report_path,omitempty"`
}
