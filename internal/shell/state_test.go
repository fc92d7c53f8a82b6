package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csg33k/employee-manager/internal/domain"
)

func TestReduce(t *testing.T) {
	e := domain.Employee{ID: "1", Name: "Ada"}

	tests := []struct {
		name   string
		start  State
		action Action
		want   State
	}{
		{
			name:   "refresh started clears error",
			start:  State{Error: "x", Employees: []domain.Employee{e}},
			action: RefreshStarted{},
			want:   State{Loading: true, Employees: []domain.Employee{e}},
		},
		{
			name:   "refresh succeeded replaces list",
			start:  State{Loading: true, Employees: []domain.Employee{{ID: "old"}}},
			action: RefreshSucceeded{Employees: []domain.Employee{e}},
			want:   State{Employees: []domain.Employee{e}},
		},
		{
			name:   "refresh failed keeps list",
			start:  State{Loading: true, Employees: []domain.Employee{e}},
			action: RefreshFailed{Message: "nope"},
			want:   State{Error: "nope", Employees: []domain.Employee{e}},
		},
		{
			name:   "create opens from closed",
			start:  State{},
			action: CreateOpened{},
			want:   State{Modal: Modal{Mode: ModalCreating}},
		},
		{
			name:   "create ignored while editing",
			start:  State{Modal: Modal{Mode: ModalEditing, Target: &e}},
			action: CreateOpened{},
			want:   State{Modal: Modal{Mode: ModalEditing, Target: &e}},
		},
		{
			name:   "edit ignored while creating",
			start:  State{Modal: Modal{Mode: ModalCreating}},
			action: EditOpened{Target: e},
			want:   State{Modal: Modal{Mode: ModalCreating}},
		},
		{
			name:   "operation failed leaves modal",
			start:  State{Modal: Modal{Mode: ModalCreating}},
			action: OperationFailed{Message: "bad"},
			want:   State{Error: "bad", Modal: Modal{Mode: ModalCreating}},
		},
		{
			name:   "dismiss modal",
			start:  State{Modal: Modal{Mode: ModalEditing, Target: &e}},
			action: ModalDismissed{},
			want:   State{},
		},
		{
			name:   "dismiss error",
			start:  State{Error: "bad"},
			action: ErrorDismissed{},
			want:   State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.start, tt.action))
		})
	}
}

func TestReduce_EditCopiesTarget(t *testing.T) {
	e := domain.Employee{ID: "1", Name: "Ada"}
	s := Reduce(State{}, EditOpened{Target: e})
	e.Name = "changed"
	assert.Equal(t, "Ada", s.Modal.Target.Name)
}

func TestReduce_RefreshSucceededCopiesSlice(t *testing.T) {
	list := []domain.Employee{{ID: "1"}}
	s := Reduce(State{}, RefreshSucceeded{Employees: list})
	list[0].ID = "2"
	assert.Equal(t, "1", s.Employees[0].ID)
}
