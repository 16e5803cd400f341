package assistant

import (
	"context"

	"github.com/grx10/hris-backend-go/internal/domain/user"
)

// Intent is a classified free-text instruction. An empty Action means the
// model answered directly, with the answer in Text.
type Intent struct {
	Action NamedAction
	Args   Args
	Text   string
}

// ClassifyInput is everything a classifier needs to resolve one message.
type ClassifyInput struct {
	Actor       user.Actor
	ActorName   string
	Message     string
	PolicyText  string
	ActionNames []NamedAction
}

// Classifier turns free text into an Intent. Implementations call out to
// a language model; errors are reported to the user as "unavailable".
type Classifier interface {
	Classify(ctx context.Context, in ClassifyInput) (Intent, error)
}

// Router maps a named action onto the HR services. Dispatch never returns
// a Go error: every failure is an Error result.
type Router interface {
	Dispatch(ctx context.Context, actor user.Actor, action NamedAction, args Args) ActionResult
}

// Drafter writes long-form HR text with a language model.
type Drafter interface {
	DraftJobDescription(ctx context.Context, role, department, skills string) (string, error)
}

type ChatService interface {
	// Chat resolves a free-text message into an ActionResult. It never fails;
	// collaborator outages come back as a text result.
	Chat(ctx context.Context, actor user.Actor, message string) ActionResult

	// DraftJobDescription writes a Markdown job description (HR/Admin only).
	DraftJobDescription(ctx context.Context, actor user.Actor, req JobDescriptionRequest) (JobDescriptionResponse, error)
}
