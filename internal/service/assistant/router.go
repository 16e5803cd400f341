package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/payroll"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/validator"
)

type RouterImpl struct {
	regularizationService regularization.RegularizationService
	payrollService        payroll.PayrollService
}

func NewRouter(regularizationService regularization.RegularizationService, payrollService payroll.PayrollService) assistant.Router {
	return &RouterImpl{
		regularizationService: regularizationService,
		payrollService:        payrollService,
	}
}

// Dispatch implements assistant.Router.
func (r *RouterImpl) Dispatch(ctx context.Context, actor user.Actor, action assistant.NamedAction, args assistant.Args) assistant.ActionResult {
	if args == nil {
		args = assistant.Args{}
	}

	switch action {
	case assistant.ActionSubmitRegularization:
		return r.submit(ctx, actor, args)
	case assistant.ActionListOwnRequests:
		return r.listOwn(ctx, actor)
	case assistant.ActionListPendingApprovals:
		return r.listPending(ctx, actor)
	case assistant.ActionDecideRequest:
		return r.decide(ctx, actor, args)
	case assistant.ActionOpenRegularizationForm:
		return assistant.Form(assistant.FormRegularization, "I can help with that. Please fill out the details in the form below to submit your request.")
	case assistant.ActionGeneratePayslip:
		return r.payslip(ctx, actor, args)
	case assistant.ActionInitiateOnboarding:
		if !actor.IsHRorAdmin() {
			return assistant.Error(assistant.ErrorKindForbidden, "I'm sorry, only HR and Admins can onboard new employees.")
		}
		return assistant.Form(assistant.FormOnboarding, "Opening the Employee Onboarding Wizard for you.")
	case assistant.ActionInitiateOffboarding:
		if !actor.IsHRorAdmin() {
			return assistant.Error(assistant.ErrorKindForbidden, "I'm sorry, only HR and Admins can offboard employees.")
		}
		return assistant.Form(assistant.FormOffboarding, "Opening the Employee Offboarding form.")
	}

	return assistant.Error(assistant.ErrorKindUnknownAction, fmt.Sprintf("I don't know how to %q.", string(action)))
}

func (r *RouterImpl) submit(ctx context.Context, actor user.Actor, args assistant.Args) assistant.ActionResult {
	req := regularization.SubmitRequest{
		Date:             args.String("date"),
		Kind:             args.String("kind", "type"),
		Reason:           args.String("reason"),
		ProposedCheckIn:  args.OptionalString("proposedCheckIn", "newCheckIn", "proposed_check_in"),
		ProposedCheckOut: args.OptionalString("proposedCheckOut", "newCheckOut", "proposed_check_out"),
	}

	created, err := r.regularizationService.Submit(ctx, actor, req)
	if err != nil {
		return errorResult(err, "")
	}

	return assistant.Text(fmt.Sprintf("Regularization request %s for %s has been submitted and is pending approval.", created.ID, created.Date))
}

func (r *RouterImpl) listOwn(ctx context.Context, actor user.Actor) assistant.ActionResult {
	requests, err := r.regularizationService.ListFor(ctx, actor, regularization.ScopeOwn)
	if err != nil {
		return errorResult(err, "")
	}

	message := "Here are your recent regularization requests:"
	if len(requests) == 0 {
		message = "You have no regularization requests."
	}
	return assistant.List(message, requests, false)
}

func (r *RouterImpl) listPending(ctx context.Context, actor user.Actor) assistant.ActionResult {
	if actor.Role == user.RoleEmployee {
		return assistant.Error(assistant.ErrorKindForbidden, "Sorry, only Managers and HR can view pending approvals.")
	}

	requests, err := r.regularizationService.ListFor(ctx, actor, regularization.ScopePendingApprovals)
	if err != nil {
		return errorResult(err, "")
	}

	message := "Here are the requests pending your approval:"
	if len(requests) == 0 {
		message = "No pending approvals found."
	}
	return assistant.List(message, requests, true)
}

func (r *RouterImpl) decide(ctx context.Context, actor user.Actor, args assistant.Args) assistant.ActionResult {
	id := args.String("id", "requestId", "request_id")
	if id == "" {
		return assistant.Error(assistant.ErrorKindValidation, "Please tell me which request to decide, e.g. REG001.")
	}

	decision, ok := regularization.ParseDecision(args.String("decision", "status"))
	if !ok {
		return assistant.Error(assistant.ErrorKindValidation, "The decision must be either Approve or Reject.")
	}

	updated, err := r.regularizationService.Decide(ctx, actor, id, decision)
	if err != nil {
		return errorResult(err, id)
	}

	return assistant.Text(fmt.Sprintf("Request %s has been %s.", updated.ID, strings.ToLower(string(updated.Status))))
}

func (r *RouterImpl) payslip(ctx context.Context, actor user.Actor, args assistant.Args) assistant.ActionResult {
	slip, err := r.payrollService.GeneratePayslip(ctx, payroll.PayslipRequest{
		EmployeeID: actor.ID,
		Month:      args.String("month"),
		Year:       args.String("year"),
	})
	if err != nil {
		return errorResult(err, "")
	}

	return assistant.PayslipResult(fmt.Sprintf("I've generated your payslip for %s %s. You can download it directly below.", slip.Month, slip.Year), slip)
}

// errorResult converts a service error into an Error result. requestID,
// when known, is mentioned in the user-facing message.
func errorResult(err error, requestID string) assistant.ActionResult {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return assistant.Error(assistant.ErrorKindValidation, "Please check your request: "+verrs.Error())

	case errors.Is(err, regularization.ErrRequestNotFound):
		return assistant.Error(assistant.ErrorKindNotFound, fmt.Sprintf("I couldn't find request %s.", requestID))

	case errors.Is(err, employee.ErrEmployeeNotFound):
		return assistant.Error(assistant.ErrorKindNotFound, "I couldn't find your employee record.")

	case errors.Is(err, regularization.ErrForbidden), errors.Is(err, user.ErrInsufficientPermissions), errors.Is(err, user.ErrActorMissing):
		return assistant.Error(assistant.ErrorKindForbidden, "Sorry, you are not allowed to do that.")

	case errors.Is(err, regularization.ErrAlreadyDecided):
		return assistant.Error(assistant.ErrorKindAlreadyDecided, fmt.Sprintf("Request %s has already been processed.", requestID))

	case errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary), errors.Is(err, payroll.ErrInvalidPeriod):
		return assistant.Error(assistant.ErrorKindValidation, "I can't generate that payslip: "+err.Error()+".")
	}

	slog.Error("assistant action failed", "error", err)
	return assistant.Error(assistant.ErrorKindInternal, "Something went wrong while processing your request. Please try again.")
}
