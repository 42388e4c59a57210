package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"log/slog"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
	gerr "github.com/lumioapp/lumio-site-manager/internal/errors"
	"github.com/lumioapp/lumio-site-manager/internal/validate"
)

type submitWaitlistResponse struct {
	Success bool `json:"success"`
	Id      int  `json:"id"`
}

// submitWaitlist accepts a creator or business signup. Tables are created on
// first use so the endpoint works against a fresh database, and the unique
// email constraint is the sole duplicate arbiter, there is no pre-check.
func (s *Server) submitWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.rep == nil {
		respondError(ctx, w, http.StatusInternalServerError,
			"Server configuration error", "database connection is not configured", "")
		return
	}

	var sub entity.WaitlistSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		// Syntax errors and shape errors are the same thing to the caller.
		if !errors.Is(err, entity.ErrMissingFields) && !errors.Is(err, entity.ErrInvalidUserType) {
			err = fmt.Errorf("%w: %v", entity.ErrMissingFields, err)
		}
		s.respondSubmitError(w, r, err)
		return
	}
	if err := sub.Validate(); err != nil {
		s.respondSubmitError(w, r, err)
		return
	}

	// Consumer-domain business signups are accepted, the log line feeds the
	// manual review queue.
	if sub.UserType == entity.UserTypeBusiness && !validate.IsWorkEmail(sub.Business.Email) {
		slog.Default().WarnContext(ctx, "business signup with non-work email",
			slog.String("email", sub.Business.Email),
		)
	}

	if err := s.rep.Waitlist().EnsureTables(ctx); err != nil {
		s.respondSubmitError(w, r, err)
		return
	}

	var (
		id  int
		err error
	)
	switch sub.UserType {
	case entity.UserTypeCreator:
		id, err = s.rep.Waitlist().AddCreator(ctx, sub.Creator)
	case entity.UserTypeBusiness:
		id, err = s.rep.Waitlist().AddBusiness(ctx, sub.Business)
	}
	if err != nil {
		s.respondSubmitError(w, r, err)
		return
	}

	s.enqueueWelcome(r, &sub)

	respondJSON(ctx, w, http.StatusOK, submitWaitlistResponse{Success: true, Id: id})
}

func (s *Server) respondSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, entity.ErrInvalidUserType):
		respondError(ctx, w, http.StatusBadRequest, "Invalid user type", "", "")
	case errors.Is(err, entity.ErrMissingFields):
		respondError(ctx, w, http.StatusBadRequest, "Missing required fields", "", "")
	default:
		// Storage errors carry the driver message for operator diagnosis,
		// the stack only outside production.
		var stack string
		if s.c.Debug {
			stack = string(debug.Stack())
		}
		respondError(ctx, w, http.StatusInternalServerError,
			"Failed to process waitlist submission", err.Error(), stack)
	}
}

// enqueueWelcome hands the confirmation mail to the outbox. Delivery is best
// effort, a failure never affects the submit response.
func (s *Server) enqueueWelcome(r *http.Request, sub *entity.WaitlistSubmission) {
	if s.mailer == nil {
		return
	}
	ctx := r.Context()

	var err error
	switch sub.UserType {
	case entity.UserTypeCreator:
		err = s.mailer.SendCreatorWelcome(ctx, sub.Creator.Email, sub.Creator.FirstName)
	case entity.UserTypeBusiness:
		err = s.mailer.SendBusinessWelcome(ctx, sub.Business.Email, sub.Business.BusinessName)
	}
	if err != nil && !errors.Is(err, gerr.ErrMailApiLimitReached) {
		slog.Default().ErrorContext(ctx, "can't enqueue welcome mail",
			slog.String("err", err.Error()),
		)
	}
}
