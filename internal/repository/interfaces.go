package repository

import (
	"context"

	"github.com/clinicscribe/scribe-api/internal/model"
)

// SessionRepository persists clinical visit records.
type SessionRepository interface {
	// NextVisitNumber returns 1 plus the highest visit number recorded
	// for the patient, or 1 when the patient has no records.
	NextVisitNumber(ctx context.Context, patient string) (int, error)

	// Create inserts a new record, assigning ID and VisitNumber on the
	// passed record. The visit number is computed and the row inserted
	// in a single statement, so concurrent writers cannot race the
	// sequence. A (patient, visit_number) collision yields a
	// UniqueViolation error.
	Create(ctx context.Context, record *model.SessionRecord) error

	// List returns all records ordered by date descending, then visit
	// number descending, with transcript and summary truncated for
	// display.
	List(ctx context.Context) ([]*model.SessionRecordSummary, error)

	// Get returns the full record, or a NotFound error.
	Get(ctx context.Context, id int64) (*model.SessionRecord, error)

	// UpdateSummary writes an edited summary back to the record.
	UpdateSummary(ctx context.Context, id int64, summary string) error
}
