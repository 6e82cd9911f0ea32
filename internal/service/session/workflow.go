package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/clinicscribe/scribe-api/internal/model"
	"github.com/clinicscribe/scribe-api/internal/repository"
	"github.com/clinicscribe/scribe-api/internal/service/report"
	"github.com/clinicscribe/scribe-api/internal/service/summarize"
	"github.com/clinicscribe/scribe-api/internal/service/transcribe"
	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

// Coarse progress fractions reported while a capture runs. UI feedback
// only, not resumable checkpoints.
const (
	progressTranscribing = 0.2
	progressSummarizing  = 0.5
	progressSaving       = 0.8
	progressRendering    = 0.9
	progressDone         = 1.0
)

// Workflow is the linear intake -> capture -> review state machine. It
// owns no UI concerns: every user action maps to a transition call that
// returns a fresh snapshot. Transitions are serialized; the record is
// inserted only after transcription and summarization have both
// succeeded, so a failed capture never leaves a partial row behind.
type Workflow struct {
	repo        repository.SessionRepository
	transcriber *transcribe.Service
	summarizer  *summarize.Service
	renderer    *report.Service

	mu       sync.Mutex
	busy     bool
	state    model.WorkflowState
	progress float64

	doctor  string
	patient string
	date    string

	record     *model.SessionRecord
	markdown   string
	reportPath string
}

func NewWorkflow(
	repo repository.SessionRepository,
	transcriber *transcribe.Service,
	summarizer *summarize.Service,
	renderer *report.Service,
) *Workflow {
	return &Workflow{
		repo:        repo,
		transcriber: transcriber,
		summarizer:  summarizer,
		renderer:    renderer,
		state:       model.StateIntake,
	}
}

// Begin moves intake -> capture once doctor, patient and date are all
// present. No adapter is touched before this validation passes.
func (w *Workflow) Begin(ctx context.Context, doctor, patient, date string) (*model.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return nil, apperrors.Validation("a capture is already being processed")
	}
	if w.state == model.StateReview {
		return nil, apperrors.Validation("reset the session before starting a new one")
	}
	if strings.TrimSpace(doctor) == "" || strings.TrimSpace(patient) == "" || strings.TrimSpace(date) == "" {
		return nil, apperrors.Validation("please fill in all required fields")
	}

	w.doctor = doctor
	w.patient = patient
	w.date = date
	w.state = model.StateCapture
	w.progress = 0

	return w.snapshotLocked(), nil
}

// Capture runs the full pipeline: transcribe, summarize, persist,
// render, surface the report file. Any failure leaves the workflow in
// capture and the store untouched (the insert is the last fallible
// external step before rendering).
func (w *Workflow) Capture(ctx context.Context, input model.CaptureInput) (*model.WorkflowSnapshot, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, apperrors.Validation("a capture is already being processed")
	}
	if w.state != model.StateCapture {
		w.mu.Unlock()
		return nil, apperrors.Validation("basic information must be submitted first")
	}
	if input.AudioPath == "" && input.DocumentPath == "" && strings.TrimSpace(input.ManualText) == "" {
		w.mu.Unlock()
		return nil, apperrors.Validation("please provide at least one input method (audio, file, or text)")
	}
	w.busy = true
	doctor, patient, date := w.doctor, w.patient, w.date
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	fail := func(err error) (*model.WorkflowSnapshot, error) {
		w.setProgress(0)
		return nil, err
	}

	w.setProgress(progressTranscribing)
	transcript, err := w.transcriber.Transcribe(ctx, input)
	if err != nil {
		return fail(err)
	}

	w.setProgress(progressSummarizing)
	summary, err := w.summarizer.Summarize(ctx, transcript, summarize.Metadata(doctor, patient, date))
	if err != nil {
		return fail(err)
	}

	w.setProgress(progressSaving)
	record := &model.SessionRecord{
		Patient:    patient,
		Doctor:     doctor,
		Date:       date,
		Transcript: transcript,
		Summary:    summary,
	}
	if err := w.repo.Create(ctx, record); err != nil {
		return fail(err)
	}

	w.setProgress(progressRendering)
	rendered, err := w.renderer.Render(report.RenderInput{
		Doctor:     doctor,
		Patient:    patient,
		Date:       date,
		SessionID:  record.VisitNumber,
		Transcript: transcript,
		Summary:    summary,
	})
	if err != nil {
		return fail(apperrors.Internal(err))
	}

	path, err := writeReportFile(rendered.PDF)
	if err != nil {
		return fail(apperrors.Internal(err))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = model.StateReview
	w.record = record
	w.markdown = rendered.Markdown
	w.reportPath = path
	w.progress = progressDone
	return w.snapshotLocked(), nil
}

// EditSummary replaces the summary of the session under review,
// persists it, and re-renders the report.
func (w *Workflow) EditSummary(ctx context.Context, summary string) (*model.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != model.StateReview || w.record == nil {
		return nil, apperrors.Validation("no session is under review")
	}
	if strings.TrimSpace(summary) == "" {
		return nil, apperrors.Validation("summary must not be empty")
	}

	if err := w.repo.UpdateSummary(ctx, w.record.ID, summary); err != nil {
		return nil, err
	}
	w.record.Summary = summary

	rendered, err := w.renderer.Render(report.RenderInput{
		Doctor:     w.record.Doctor,
		Patient:    w.record.Patient,
		Date:       w.record.Date,
		SessionID:  w.record.VisitNumber,
		Transcript: w.record.Transcript,
		Summary:    summary,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	path, err := writeReportFile(rendered.PDF)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	w.markdown = rendered.Markdown
	w.reportPath = path
	return w.snapshotLocked(), nil
}

// Reset returns to intake. Nothing is carried forward; the history view
// re-fetches whatever it needs from the store.
func (w *Workflow) Reset() (*model.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return nil, apperrors.Validation("a capture is already being processed")
	}

	w.state = model.StateIntake
	w.progress = 0
	w.doctor = ""
	w.patient = ""
	w.date = ""
	w.record = nil
	w.markdown = ""
	w.reportPath = ""
	return w.snapshotLocked(), nil
}

// Snapshot returns the current workflow view, including the coarse
// progress of an in-flight capture.
func (w *Workflow) Snapshot() *model.WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// ReportPath returns the rendered document for the session under
// review, empty when there is none.
func (w *Workflow) ReportPath() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reportPath
}

func (w *Workflow) snapshotLocked() *model.WorkflowSnapshot {
	snap := &model.WorkflowSnapshot{
		State:    w.state.String(),
		Step:     int(w.state),
		Progress: w.progress,
		Doctor:   w.doctor,
		Patient:  w.patient,
		Date:     w.date,
	}
	if w.record != nil {
		snap.RecordID = w.record.ID
		snap.Visit = w.record.VisitNumber
		snap.Transcript = w.record.Transcript
		snap.Summary = w.record.Summary
		snap.Markdown = w.markdown
		snap.ReportPath = w.reportPath
	}
	return snap
}

func (w *Workflow) setProgress(p float64) {
	w.mu.Lock()
	w.progress = p
	w.mu.Unlock()
}

func writeReportFile(pdf []byte) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("report-%s.pdf", uuid.New().String()))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}
