package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validation("missing fields"), http.StatusBadRequest},
		{"unsupported format", apperrors.UnsupportedFormat(".csv"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("session record", nil), http.StatusNotFound},
		{"unique violation", apperrors.UniqueViolation("P1", 1, nil), http.StatusConflict},
		{"transcription", apperrors.Transcription(errors.New("down")), http.StatusBadGateway},
		{"summarization", apperrors.Summarization(errors.New("down")), http.StatusBadGateway},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusForError(tc.err))
		})
	}
}
