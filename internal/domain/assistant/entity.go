package assistant

import (
	"fmt"
	"strings"

	"github.com/grx10/hris-backend-go/internal/domain/payroll"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
)

// NamedAction is an HR action the assistant can perform. Classifiers
// must emit exactly these names.
type NamedAction string

const (
	ActionSubmitRegularization   NamedAction = "SubmitRegularization"
	ActionListOwnRequests        NamedAction = "ListOwnRequests"
	ActionListPendingApprovals   NamedAction = "ListPendingApprovals"
	ActionDecideRequest          NamedAction = "DecideRequest"
	ActionOpenRegularizationForm NamedAction = "OpenRegularizationForm"
	ActionGeneratePayslip        NamedAction = "GeneratePayslip"
	ActionInitiateOnboarding     NamedAction = "InitiateOnboarding"
	ActionInitiateOffboarding    NamedAction = "InitiateOffboarding"
)

// Actions lists every supported action in declaration order.
var Actions = []NamedAction{
	ActionSubmitRegularization,
	ActionListOwnRequests,
	ActionListPendingApprovals,
	ActionDecideRequest,
	ActionOpenRegularizationForm,
	ActionGeneratePayslip,
	ActionInitiateOnboarding,
	ActionInitiateOffboarding,
}

// actionAliases maps the tool names used by earlier assistant prompts onto
// the current action names.
var actionAliases = map[string]NamedAction{
	"getmyregularizationrequests": ActionListOwnRequests,
	"getpendingapprovals":         ActionListPendingApprovals,
	"approverejectrequest":        ActionDecideRequest,
}

// ParseAction resolves an action name case-insensitively, accepting the
// legacy tool names too.
func ParseAction(s string) (NamedAction, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Actions {
		if strings.ToLower(string(a)) == key {
			return a, true
		}
	}
	a, ok := actionAliases[key]
	return a, ok
}

// Args are the classifier-supplied arguments of an action.
type Args map[string]any

// String returns the first non-blank value among keys, trimmed. Non-string
// values are formatted with fmt.
func (a Args) String(keys ...string) string {
	for _, k := range keys {
		v, ok := a[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			s = fmt.Sprintf("%g", t)
		default:
			s = fmt.Sprint(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// OptionalString is String returning nil when no key has a value.
func (a Args) OptionalString(keys ...string) *string {
	s := a.String(keys...)
	if s == "" {
		return nil
	}
	return &s
}

type ResultType string

const (
	ResultText    ResultType = "text"
	ResultList    ResultType = "list"
	ResultError   ResultType = "error"
	ResultForm    ResultType = "form"
	ResultPayslip ResultType = "payslip"
)

// ErrorKind classifies a failed action for the caller.
type ErrorKind string

const (
	ErrorKindValidation     ErrorKind = "ValidationError"
	ErrorKindNotFound       ErrorKind = "NotFound"
	ErrorKindForbidden      ErrorKind = "Forbidden"
	ErrorKindAlreadyDecided ErrorKind = "AlreadyDecided"
	ErrorKindUnknownAction  ErrorKind = "UnknownAction"
	ErrorKindInternal       ErrorKind = "Internal"
)

// FormKind names a UI form the client should open.
type FormKind string

const (
	FormRegularization FormKind = "regularization"
	FormOnboarding     FormKind = "onboarding"
	FormOffboarding    FormKind = "offboarding"
)

// ActionResult is the display payload of an action. Type selects which of
// the optional fields are set.
type ActionResult struct {
	Type           ResultType                       `json:"type"`
	Message        string                           `json:"message"`
	Records        []regularization.RequestResponse `json:"records,omitempty"`
	IsApprovalView bool                             `json:"is_approval_view,omitempty"`
	ErrorKind      ErrorKind                        `json:"error_kind,omitempty"`
	Form           FormKind                         `json:"form,omitempty"`
	Payslip        *payroll.PayslipResponse         `json:"payslip,omitempty"`
}

func Text(message string) ActionResult {
	return ActionResult{Type: ResultText, Message: message}
}

func List(message string, records []regularization.Request, isApprovalView bool) ActionResult {
	return ActionResult{
		Type:           ResultList,
		Message:        message,
		Records:        regularization.NewRequestResponses(records),
		IsApprovalView: isApprovalView,
	}
}

func Error(kind ErrorKind, message string) ActionResult {
	return ActionResult{Type: ResultError, Message: message, ErrorKind: kind}
}

func Form(form FormKind, message string) ActionResult {
	return ActionResult{Type: ResultForm, Message: message, Form: form}
}

func PayslipResult(message string, p payroll.PayslipResponse) ActionResult {
	return ActionResult{Type: ResultPayslip, Message: message, Payslip: &p}
}
