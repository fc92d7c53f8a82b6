package shell

import "github.com/csg33k/employee-manager/internal/domain"

type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreating
	ModalEditing
)

// Modal is the create/edit dialog. Target is set only while editing.
type Modal struct {
	Mode   ModalMode
	Target *domain.Employee
}

// State is everything the page renders. Error is empty when there is none.
type State struct {
	Employees []domain.Employee
	Loading   bool
	Error     string
	Modal     Modal
}

// Initial is the state before the first fetch completes.
func Initial() State {
	return State{Loading: true, Employees: []domain.Employee{}}
}

// Action is one state transition.
type Action interface {
	apply(State) State
}

// Reduce applies a to s and returns the new state. s is not modified.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

type (
	RefreshStarted   struct{}
	RefreshSucceeded struct{ Employees []domain.Employee }
	RefreshFailed    struct{ Message string }
	// MutationStarted clears the error before a create, update or delete.
	MutationStarted struct{}
	OperationFailed struct{ Message string }
	CreateOpened    struct{}
	EditOpened      struct{ Target domain.Employee }
	ModalDismissed  struct{}
	ErrorDismissed  struct{}
)

func (RefreshStarted) apply(s State) State {
	s.Loading = true
	s.Error = ""
	return s
}

func (a RefreshSucceeded) apply(s State) State {
	s.Employees = append([]domain.Employee{}, a.Employees...)
	s.Loading = false
	return s
}

func (a RefreshFailed) apply(s State) State {
	s.Error = a.Message
	s.Loading = false
	return s
}

func (MutationStarted) apply(s State) State {
	s.Error = ""
	return s
}

func (a OperationFailed) apply(s State) State {
	s.Error = a.Message
	return s
}

// Only one modal may be open at a time.
func (CreateOpened) apply(s State) State {
	if s.Modal.Mode == ModalEditing {
		return s
	}
	s.Modal = Modal{Mode: ModalCreating}
	return s
}

func (a EditOpened) apply(s State) State {
	if s.Modal.Mode == ModalCreating {
		return s
	}
	target := a.Target
	s.Modal = Modal{Mode: ModalEditing, Target: &target}
	return s
}

func (ModalDismissed) apply(s State) State {
	s.Modal = Modal{Mode: ModalClosed}
	return s
}

func (ErrorDismissed) apply(s State) State {
	s.Error = ""
	return s
}
