package summarize

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
)

// instruction pins the eight report sections the clinician expects. The
// model's output is trusted verbatim; there is no structural check that
// every section came back.
const instruction = "Please summarize the above dialogue in a medical report style and list possible diagnoses. " +
	"The list need to contain the 1.Chief Complaint, 2. History of Present Illness, " +
	"3. Mental Status Examination, 4. Assessment, 5. Possible Diagnoses, " +
	"6. Recommendations, 7. Plan, 8. Follow-Up"

// Service produces a structured report from a transcript via a hosted
// chat model.
type Service struct {
	chatModel model.BaseChatModel
}

func NewService(chatModel model.BaseChatModel) *Service {
	return &Service{chatModel: chatModel}
}

// Metadata formats the visit header passed alongside the transcript.
func Metadata(doctor, patient, date string) string {
	return fmt.Sprintf("Doctor: %s, Patient: %s, Date: %s", doctor, patient, date)
}

// Summarize sends transcript plus visit metadata to the model and
// returns the completion text as-is. Any call failure surfaces as a
// summarization error; there is no retry.
func (s *Service) Summarize(ctx context.Context, transcript, info string) (string, error) {
	tpl := prompt.FromMessages(schema.FString,
		schema.UserMessage("Patient Info: {info}\nTranscript: {transcript}\n"+instruction),
	)

	messages, err := tpl.Format(ctx, map[string]any{
		"info":       info,
		"transcript": transcript,
	})
	if err != nil {
		return "", apperrors.Summarization(err)
	}

	out, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", apperrors.Summarization(err)
	}

	return out.Content, nil
}
