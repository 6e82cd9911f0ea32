package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicscribe/scribe-api/internal/model"
)

func testInput() RenderInput {
	return RenderInput{
		Doctor:     "Dr. A",
		Patient:    "P1",
		Date:       "2024-01-01",
		SessionID:  1,
		Transcript: "Patient reports mild anxiety.\nSleep is poor.",
		Summary:    "1. Chief Complaint: anxiety",
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	svc := NewService()

	first, err := svc.Render(testInput())
	require.NoError(t, err)
	second, err := svc.Render(testInput())
	require.NoError(t, err)

	assert.Equal(t, first.PDF, second.PDF)
	assert.Equal(t, first.Markdown, second.Markdown)
}

func TestRenderArtifacts(t *testing.T) {
	svc := NewService()

	rendered, err := svc.Render(testInput())
	require.NoError(t, err)

	assert.True(t, len(rendered.PDF) > 0)
	assert.Equal(t, "%PDF", string(rendered.PDF[:4]))

	assert.Contains(t, rendered.Markdown, "session #1")
	assert.Contains(t, rendered.Markdown, "## Transcript")
	assert.Contains(t, rendered.Markdown, "## Summary & Possible Diagnoses")
	assert.Contains(t, rendered.Markdown, "Patient reports mild anxiety.")
	assert.Contains(t, rendered.Markdown, "1. Chief Complaint: anxiety")
}

func TestRenderRecordCaches(t *testing.T) {
	svc := NewService()
	record := &model.SessionRecord{
		ID:          7,
		Patient:     "P1",
		VisitNumber: 2,
		Doctor:      "Dr. A",
		Date:        "2024-01-01",
		Transcript:  "transcript",
		Summary:     "summary",
	}

	first, err := svc.RenderRecord(record)
	require.NoError(t, err)
	second, err := svc.RenderRecord(record)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// An edited summary must invalidate the cached artifact.
	record.Summary = "edited summary"
	third, err := svc.RenderRecord(record)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Contains(t, third.Markdown, "edited summary")
}
