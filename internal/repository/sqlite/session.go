package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/clinicscribe/scribe-api/internal/model"
	"github.com/clinicscribe/scribe-api/internal/repository"
	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

// listPrefixLen is how many characters of transcript/summary the history
// list shows per row.
const listPrefixLen = 100

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) NextVisitNumber(ctx context.Context, patient string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(visit_number), 0) + 1 FROM session_records WHERE patient = ?`
	if err := r.db.GetContext(ctx, &next, query, patient); err != nil {
		return 0, fmt.Errorf("failed to compute next visit number: %w", err)
	}
	return next, nil
}

func (r *sessionRepository) Create(ctx context.Context, record *model.SessionRecord) error {
	// Visit number is computed inside the INSERT so the read and the
	// write cannot be interleaved by another writer.
	query := `
		INSERT INTO session_records (patient, visit_number, doctor, date, transcript, summary, diseases)
		VALUES (?, (SELECT COALESCE(MAX(visit_number), 0) + 1 FROM session_records WHERE patient = ?), ?, ?, ?, ?, ?)
		RETURNING id, visit_number
	`
	row := r.db.QueryRowxContext(ctx, query,
		record.Patient, record.Patient, record.Doctor, record.Date,
		record.Transcript, record.Summary, record.Diseases)
	return r.scanInsert(row, record)
}

func (r *sessionRepository) scanInsert(row *sqlx.Row, record *model.SessionRecord) error {
	if err := row.Scan(&record.ID, &record.VisitNumber); err != nil {
		if isUniqueViolation(err) {
			return apperrors.UniqueViolation(record.Patient, record.VisitNumber, err)
		}
		return fmt.Errorf("failed to insert session record: %w", err)
	}
	return nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*model.SessionRecordSummary, error) {
	query := `
		SELECT id, patient, visit_number, doctor, date, transcript, summary
		FROM session_records
		ORDER BY date DESC, visit_number DESC
	`
	var rows []*model.SessionRecordSummary
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}

	for _, row := range rows {
		row.Transcript = truncate(row.Transcript, listPrefixLen)
		row.Summary = truncate(row.Summary, listPrefixLen)
	}
	return rows, nil
}

func (r *sessionRepository) Get(ctx context.Context, id int64) (*model.SessionRecord, error) {
	var record model.SessionRecord
	query := `SELECT * FROM session_records WHERE id = ?`
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("session record", err)
		}
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}
	return &record, nil
}

func (r *sessionRepository) UpdateSummary(ctx context.Context, id int64, summary string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE session_records SET summary = ? WHERE id = ?`, summary, id)
	if err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("session record", nil)
	}
	return nil
}

// isUniqueViolation matches the sqlite UNIQUE constraint error. The
// modernc driver exposes no typed error for it, so the message is the
// contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
