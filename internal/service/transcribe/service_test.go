package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicscribe/scribe-api/internal/model"
	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

type stubRecognizer struct {
	text   string
	err    error
	called bool
}

func (s *stubRecognizer) Recognize(ctx context.Context, audioPath string) (string, error) {
	s.called = true
	return s.text, s.err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestManualTextWinsOverOtherInputs(t *testing.T) {
	recognizer := &stubRecognizer{text: "from audio"}
	svc := NewService(recognizer)

	text, err := svc.Transcribe(context.Background(), model.CaptureInput{
		ManualText:   "  typed by hand \n",
		AudioPath:    "/tmp/some-audio.wav",
		DocumentPath: "/tmp/some-doc.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "  typed by hand \n", text)
	assert.False(t, recognizer.called)
}

func TestAudioWinsOverDocument(t *testing.T) {
	recognizer := &stubRecognizer{text: "spoken words"}
	svc := NewService(recognizer)

	text, err := svc.Transcribe(context.Background(), model.CaptureInput{
		AudioPath:    "/tmp/some-audio.wav",
		DocumentPath: writeTempFile(t, "notes.txt", "written words"),
	})
	require.NoError(t, err)
	assert.Equal(t, "spoken words", text)
	assert.True(t, recognizer.called)
}

func TestTextDocument(t *testing.T) {
	svc := NewService(&stubRecognizer{})

	text, err := svc.Transcribe(context.Background(), model.CaptureInput{
		DocumentPath: writeTempFile(t, "notes.txt", "Hello world"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestUnsupportedDocumentFormat(t *testing.T) {
	svc := NewService(&stubRecognizer{})

	_, err := svc.Transcribe(context.Background(), model.CaptureInput{
		DocumentPath: writeTempFile(t, "notes.csv", "a,b,c"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnsupportedFormat))
}

func TestNoInputYieldsEmptyTranscript(t *testing.T) {
	svc := NewService(&stubRecognizer{})

	text, err := svc.Transcribe(context.Background(), model.CaptureInput{})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestRecognizerFailure(t *testing.T) {
	svc := NewService(&stubRecognizer{err: errors.New("quota exceeded")})

	_, err := svc.Transcribe(context.Background(), model.CaptureInput{
		AudioPath: "/tmp/some-audio.wav",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrTranscription))
}
