package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("gemini returned no candidates")

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client classifies HR chat messages and drafts HR text with Gemini.
type Client struct {
	models generator
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{models: client.Models, model: model}, nil
}

// Classify implements assistant.Classifier.
func (c *Client) Classify(ctx context.Context, in assistant.ClassifyInput) (assistant.Intent, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf("Context: %s\n\nQuestion: %s", in.PolicyText, in.Message), genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(in), genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: functionDeclarations(in.ActionNames)}},
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return assistant.Intent{}, fmt.Errorf("gemini generate content failed: %w", err)
	}

	return intentFromResponse(resp)
}

// DraftJobDescription implements assistant.Drafter.
func (c *Client) DraftJobDescription(ctx context.Context, role, department, skills string) (string, error) {
	prompt := fmt.Sprintf(`Write a professional Job Description for a %s in the %s department at GRX10.
Required skills: %s.
Include Responsibilities, Requirements, and a section on "Why Join GRX10?". Output in Markdown format.`, role, department, skills)

	resp, err := c.models.GenerateContent(ctx, c.model, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	intent, err := intentFromResponse(resp)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(intent.Text) == "" {
		return "", ErrEmptyResponse
	}
	return intent.Text, nil
}

// intentFromResponse takes the first function call of the first candidate
// as the intent. Without one, the candidate's text is the answer.
func intentFromResponse(resp *genai.GenerateContentResponse) (assistant.Intent, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return assistant.Intent{}, ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.FunctionCall != nil {
			action, ok := assistant.ParseAction(part.FunctionCall.Name)
			if !ok {
				action = assistant.NamedAction(part.FunctionCall.Name)
			}
			return assistant.Intent{Action: action, Args: assistant.Args(part.FunctionCall.Args)}, nil
		}
		if part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}

	return assistant.Intent{Text: text.String()}, nil
}

func systemInstruction(in assistant.ClassifyInput) string {
	return fmt.Sprintf(`You are a helpful HR Assistant for GRX10 Company.
Current User: %s (%s), employee id %s.

Use the provided context (Company Policies) to answer employee questions accurately.

TOOL USAGE RULES:
1. Payslips: If user asks for payslip/salary slip, use 'GeneratePayslip'.
2. Regularization:
   - If user describes a complete correction (date, type, reason and times), use 'SubmitRegularization'.
   - If user says "I missed a punch" or "apply for regularization" without details, use 'OpenRegularizationForm'.
   - If user asks "status of my requests", use 'ListOwnRequests'.
   - If Manager/HR asks "pending approvals" or "what requests do I need to approve", use 'ListPendingApprovals'.
   - If Manager/HR says "Approve request REG..." or clicks an action button, use 'DecideRequest'.
3. Employee Management (HR ONLY):
   - If HR/Admin says "onboard new employee" or "add new hire", use 'InitiateOnboarding'.
   - If HR/Admin says "offboard employee", "employee resigned", or "remove employee", use 'InitiateOffboarding'.

Be professional and concise.`, in.ActorName, in.Actor.Role, in.Actor.ID)
}

var noParameters = &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}

func stringProp(description string, enum ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description, Enum: enum}
}

var declarations = map[assistant.NamedAction]*genai.FunctionDeclaration{
	assistant.ActionSubmitRegularization: {
		Description: "Submits an attendance regularization request for the current user.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":             stringProp("The date being corrected, YYYY-MM-DD."),
				"kind":             stringProp("The kind of correction.", "Missing Punch", "Incorrect Punch", "Work From Home"),
				"reason":           stringProp("Why the correction is needed."),
				"proposedCheckIn":  stringProp("Corrected check-in time, HH:MM. Omit for Work From Home."),
				"proposedCheckOut": stringProp("Corrected check-out time, HH:MM. Omit for Work From Home."),
			},
			Required: []string{"date", "kind", "reason"},
		},
	},
	assistant.ActionListOwnRequests: {
		Description: "Retrieves the history and status of regularization requests for the current user.",
		Parameters:  noParameters,
	},
	assistant.ActionListPendingApprovals: {
		Description: "Retrieves pending regularization requests that need approval. Only for Managers and HR.",
		Parameters:  noParameters,
	},
	assistant.ActionDecideRequest: {
		Description: "Approve or reject a specific regularization request.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":       stringProp("The request id, e.g. REG001."),
				"decision": stringProp("The decision.", "Approve", "Reject"),
			},
			Required: []string{"id", "decision"},
		},
	},
	assistant.ActionOpenRegularizationForm: {
		Description: "Opens a UI form for the user to submit a regularization request (missing punch, incorrect punch, WFH).",
		Parameters:  noParameters,
	},
	assistant.ActionGeneratePayslip: {
		Description: "Generates and retrieves the salary slip (payslip) for a specific month and year.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"month": stringProp("The month name (e.g. January, October)."),
				"year":  stringProp("The year (e.g. 2023)."),
			},
			Required: []string{"month", "year"},
		},
	},
	assistant.ActionInitiateOnboarding: {
		Description: "Opens the employee onboarding form to add a new hire. Use this when HR wants to add a new employee.",
		Parameters:  noParameters,
	},
	assistant.ActionInitiateOffboarding: {
		Description: "Opens the employee offboarding form to remove or exit an employee. Use this when HR wants to process a resignation or termination.",
		Parameters:  noParameters,
	},
}

// functionDeclarations returns one declaration per known action, named
// exactly as the router expects.
func functionDeclarations(actions []assistant.NamedAction) []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(actions))
	for _, a := range actions {
		d, ok := declarations[a]
		if !ok {
			continue
		}
		out = append(out, &genai.FunctionDeclaration{
			Name:        string(a),
			Description: d.Description,
			Parameters:  d.Parameters,
		})
	}
	return out
}

var (
	_ assistant.Classifier = (*Client)(nil)
	_ assistant.Drafter    = (*Client)(nil)
)
