package model

// SessionRecord is one clinical visit, persisted once transcription and
// summarization have both succeeded.
type SessionRecord struct {
	ID          int64  `db:"id" json:"id"`
	Patient     string `db:"patient" json:"patient"`
	VisitNumber int    `db:"visit_number" json:"visit_number"`
	Doctor      string `db:"doctor" json:"doctor"`
	Date        string `db:"date" json:"date"`
	Transcript  string `db:"transcript" json:"transcript"`
	Summary     string `db:"summary" json:"summary"`
	// Diseases is a reserved extension point; nothing populates it yet.
	Diseases string `db:"diseases" json:"diseases"`
}

// SessionRecordSummary is a history-list row: every column, with the long
// text fields truncated to a display prefix.
type SessionRecordSummary struct {
	ID          int64  `db:"id" json:"id"`
	Patient     string `db:"patient" json:"patient"`
	VisitNumber int    `db:"visit_number" json:"visit_number"`
	Doctor      string `db:"doctor" json:"doctor"`
	Date        string `db:"date" json:"date"`
	Transcript  string `db:"transcript" json:"transcript"`
	Summary     string `db:"summary" json:"summary"`
}

// IntakeRequest carries the step-1 fields.
type IntakeRequest struct {
	Doctor  string `json:"doctor" binding:"required,notblank"`
	Patient string `json:"patient" binding:"required,notblank"`
	Date    string `json:"date" binding:"required,notblank"`
}

// EditSummaryRequest replaces the summary of the session under review.
type EditSummaryRequest struct {
	Summary string `json:"summary" binding:"required,notblank"`
}

// EmailReportRequest asks for a record's report to be mailed out.
type EmailReportRequest struct {
	To string `json:"to" binding:"required,email"`
}
