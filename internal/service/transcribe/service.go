package transcribe

import (
	"context"
	"strings"

	"github.com/clinicscribe/scribe-api/internal/model"
	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

// Recognizer is the interface for speech-to-text backends.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (string, error)
}

// Service turns whichever session input was supplied into a plain-text
// transcript. Manual text wins over audio, audio wins over a document.
type Service struct {
	recognizer Recognizer
}

func NewService(recognizer Recognizer) *Service {
	return &Service{recognizer: recognizer}
}

// Transcribe resolves the capture input to transcript text. Manual text
// is returned verbatim. No input at all yields an empty transcript; the
// workflow validates before calling here.
func (s *Service) Transcribe(ctx context.Context, input model.CaptureInput) (string, error) {
	if strings.TrimSpace(input.ManualText) != "" {
		return input.ManualText, nil
	}

	if input.AudioPath != "" {
		text, err := s.recognizer.Recognize(ctx, input.AudioPath)
		if err != nil {
			return "", apperrors.Transcription(err)
		}
		return text, nil
	}

	if input.DocumentPath != "" {
		text, err := extractDocument(input.DocumentPath)
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrUnsupportedFormat) {
				return "", err
			}
			return "", apperrors.Transcription(err)
		}
		return text, nil
	}

	return "", nil
}
