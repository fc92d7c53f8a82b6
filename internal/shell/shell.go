// Package shell owns the employee list and the page state around it, and
// orchestrates the list/create/update/delete flows against the access layer.
// Every successful mutation is followed by a full re-fetch.
package shell

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

// DeletePrompt is the question put to the Confirmer before a delete.
const DeletePrompt = "Are you sure you want to delete this employee?"

// Confirmer answers a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var fallbackMessages = map[domain.Op]string{
	domain.OpList:   "Failed to fetch employees",
	domain.OpCreate: "Failed to create employee",
	domain.OpUpdate: "Failed to update employee",
	domain.OpDelete: "Failed to delete employee",
}

// Shell serializes state changes. The lock is never held across a call to
// the api, so requests from one session may overlap.
type Shell struct {
	api    ports.EmployeeAPI
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

func New(api ports.EmployeeAPI, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{api: api, logger: logger, state: Initial()}
}

// State returns a snapshot of the current state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Employees = append([]domain.Employee{}, s.state.Employees...)
	return st
}

func (s *Shell) dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

// Refresh replaces the employee list with a fresh fetch.
func (s *Shell) Refresh(ctx context.Context) {
	s.dispatch(RefreshStarted{})
	employees, err := s.api.List(ctx)
	if err != nil {
		s.logger.Warn("fetch employees failed", "err", err)
		s.dispatch(RefreshFailed{Message: message(domain.OpList, err)})
		return
	}
	s.dispatch(RefreshSucceeded{Employees: employees})
}

func (s *Shell) OpenCreate() { s.dispatch(CreateOpened{}) }

// SubmitCreate creates the employee, then refreshes and closes the modal.
// On failure the modal stays open for a retry or cancel.
func (s *Shell) SubmitCreate(ctx context.Context, payload domain.EmployeeFormData) {
	s.dispatch(MutationStarted{})
	if _, err := s.api.Create(ctx, payload); err != nil {
		s.logger.Warn("create employee failed", "err", err)
		s.dispatch(OperationFailed{Message: message(domain.OpCreate, err)})
		return
	}
	s.Refresh(ctx)
	s.dispatch(ModalDismissed{})
}

// OpenEdit opens the edit modal for the listed employee with id. It reports
// whether the modal is now editing that employee.
func (s *Shell) OpenEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.state.Employees {
		if e.ID == id {
			s.state = Reduce(s.state, EditOpened{Target: e})
			return s.state.Modal.Mode == ModalEditing && s.state.Modal.Target.ID == id
		}
	}
	return false
}

// SubmitUpdate replaces the record being edited. It reports false without
// calling the api when no edit is in progress.
func (s *Shell) SubmitUpdate(ctx context.Context, payload domain.EmployeeFormData) bool {
	s.mu.Lock()
	if s.state.Modal.Mode != ModalEditing || s.state.Modal.Target == nil {
		s.mu.Unlock()
		return false
	}
	id := s.state.Modal.Target.ID
	s.state = Reduce(s.state, MutationStarted{})
	s.mu.Unlock()

	if _, err := s.api.Update(ctx, id, payload); err != nil {
		s.logger.Warn("update employee failed", "id", id, "err", err)
		s.dispatch(OperationFailed{Message: message(domain.OpUpdate, err)})
		return true
	}
	s.Refresh(ctx)
	s.dispatch(ModalDismissed{})
	return true
}

// Delete asks c to confirm, then deletes and refreshes. It reports whether
// the delete was attempted.
func (s *Shell) Delete(ctx context.Context, id string, c Confirmer) bool {
	if c == nil || !c.Confirm(DeletePrompt) {
		return false
	}
	s.dispatch(MutationStarted{})
	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", "id", id, "err", err)
		s.dispatch(OperationFailed{Message: message(domain.OpDelete, err)})
		return true
	}
	s.Refresh(ctx)
	return true
}

func (s *Shell) CloseModal() { s.dispatch(ModalDismissed{}) }

func (s *Shell) DismissError() { s.dispatch(ErrorDismissed{}) }

func message(op domain.Op, err error) string {
	var opErr *domain.OpError
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	return fallbackMessages[op]
}
