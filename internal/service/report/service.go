package report

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicscribe/scribe-api/internal/model"
)

// RenderInput identifies one visit's report. Identical inputs always
// render identical bytes.
type RenderInput struct {
	Doctor     string
	Patient    string
	Date       string
	SessionID  int
	Transcript string
	Summary    string
}

// Report is the pair of artifacts the renderer produces: a paginated
// PDF for download and a markdown string for on-screen preview.
type Report struct {
	PDF      []byte
	Markdown string
}

// Service renders visit reports. Re-renders of unchanged records are
// served from an in-memory cache.
type Service struct {
	cache *gocache.Cache
}

func NewService() *Service {
	return &Service{
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// RenderRecord renders a stored record, memoizing on record id plus a
// content hash so edited summaries invalidate naturally.
func (s *Service) RenderRecord(record *model.SessionRecord) (*Report, error) {
	key := fmt.Sprintf("%d:%x", record.ID, sha256.Sum256([]byte(record.Transcript+"\x00"+record.Summary)))
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*Report), nil
	}

	report, err := s.Render(RenderInput{
		Doctor:     record.Doctor,
		Patient:    record.Patient,
		Date:       record.Date,
		SessionID:  record.VisitNumber,
		Transcript: record.Transcript,
		Summary:    record.Summary,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, report, gocache.DefaultExpiration)
	return report, nil
}

// Render produces the PDF and the markdown preview. Document dates are
// pinned so output depends only on the input tuple.
func (s *Service) Render(in RenderInput) (*Report, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetModificationDate(time.Unix(0, 0))
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("This is the session #%d", in.SessionID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 6, "Doctor: "+in.Doctor, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Patient: "+in.Patient, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+in.Date, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Transcript:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 5, in.Transcript, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Summary & Possible Diagnoses:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 5, in.Summary, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	markdown := fmt.Sprintf(`# This is the session #%d

**Doctor:** %s
**Patient:** %s
**Date:** %s

---

## Transcript
%s

---

## Summary & Possible Diagnoses
%s
`, in.SessionID, in.Doctor, in.Patient, in.Date, in.Transcript, in.Summary)

	return &Report{PDF: buf.Bytes(), Markdown: markdown}, nil
}
