package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
)

const (
	unavailableMessage  = "Sorry, the HR Assistant is temporarily unavailable."
	unprocessedMessage  = "I'm sorry, I couldn't process that request right now."
	collaboratorTimeout = 30 * time.Second
)

type ChatServiceImpl struct {
	router       assistant.Router
	classifier   assistant.Classifier
	drafter      assistant.Drafter
	employeeRepo employee.EmployeeRepository
	policyText   string
}

// NewChatService builds the chat front of the assistant. classifier and
// drafter may be nil when no model is configured.
func NewChatService(router assistant.Router, classifier assistant.Classifier, drafter assistant.Drafter, employeeRepo employee.EmployeeRepository, policyText string) assistant.ChatService {
	return &ChatServiceImpl{
		router:       router,
		classifier:   classifier,
		drafter:      drafter,
		employeeRepo: employeeRepo,
		policyText:   policyText,
	}
}

// Chat implements assistant.ChatService.
func (c *ChatServiceImpl) Chat(ctx context.Context, actor user.Actor, message string) assistant.ActionResult {
	if c.classifier == nil {
		return assistant.Text(unavailableMessage)
	}

	name := actor.ID
	if emp, err := c.employeeRepo.GetByID(ctx, actor.ID); err == nil {
		name = emp.Name
	}

	classifyCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	defer cancel()

	intent, err := c.classifier.Classify(classifyCtx, assistant.ClassifyInput{
		Actor:       actor,
		ActorName:   name,
		Message:     message,
		PolicyText:  c.policyText,
		ActionNames: assistant.Actions,
	})
	if err != nil {
		slog.Error("assistant classify error", "error", err, "employee_id", actor.ID)
		return assistant.Text(unavailableMessage)
	}

	if intent.Action == "" {
		if text := strings.TrimSpace(intent.Text); text != "" {
			return assistant.Text(text)
		}
		return assistant.Text(unprocessedMessage)
	}

	action := intent.Action
	if parsed, ok := assistant.ParseAction(string(action)); ok {
		action = parsed
	}
	return c.router.Dispatch(ctx, actor, action, intent.Args)
}

// DraftJobDescription implements assistant.ChatService.
func (c *ChatServiceImpl) DraftJobDescription(ctx context.Context, actor user.Actor, req assistant.JobDescriptionRequest) (assistant.JobDescriptionResponse, error) {
	if !actor.IsHRorAdmin() {
		return assistant.JobDescriptionResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return assistant.JobDescriptionResponse{}, err
	}
	if c.drafter == nil {
		return assistant.JobDescriptionResponse{}, assistant.ErrAssistantUnavailable
	}

	draftCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	defer cancel()

	markdown, err := c.drafter.DraftJobDescription(draftCtx, strings.TrimSpace(req.Role), strings.TrimSpace(req.Department), strings.TrimSpace(req.Skills))
	if err != nil {
		slog.Error("job description draft error", "error", err)
		return assistant.JobDescriptionResponse{}, fmt.Errorf("%w: %v", assistant.ErrAssistantUnavailable, err)
	}

	return assistant.JobDescriptionResponse{Markdown: markdown}, nil
}
