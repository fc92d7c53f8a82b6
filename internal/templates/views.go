package templates

import (
	"github.com/csg33k/employee-manager/internal/form"
	"github.com/csg33k/employee-manager/internal/shell"
)

// AppView is everything the app region renders.
type AppView struct {
	State shell.State
	// Form is nil while the modal is closed.
	Form *FormView
}

type FormView struct {
	Title  string
	Put    bool
	Action string
	Fields []FieldView
}

type FieldView struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Missing bool
}

// NewAppView pairs the state with the modal form. f carries the values to
// show; when showMissing is set, empty fields are flagged the way a browser
// flags unfilled required inputs.
func NewAppView(st shell.State, f form.Form, showMissing bool) AppView {
	v := AppView{State: st}
	switch st.Modal.Mode {
	case shell.ModalCreating:
		v.Form = newFormView("Add New Employee", false, "/employees", f, showMissing)
	case shell.ModalEditing:
		v.Form = newFormView("Edit Employee", true, itemPath(st.Modal.Target.ID), f, showMissing)
	}
	return v
}

// SeededForm returns the form the modal opens with: the edit target's fields,
// or blank when creating.
func SeededForm(st shell.State) form.Form {
	if st.Modal.Mode == shell.ModalEditing && st.Modal.Target != nil {
		seed := st.Modal.Target.FormData()
		return form.New(&seed, nil, nil)
	}
	return form.New(nil, nil, nil)
}

func newFormView(title string, put bool, action string, f form.Form, showMissing bool) *FormView {
	missing := map[form.Field]bool{}
	if showMissing {
		for _, field := range f.Missing() {
			missing[field] = true
		}
	}
	fv := &FormView{Title: title, Put: put, Action: action}
	for _, field := range form.Fields {
		fv.Fields = append(fv.Fields, FieldView{
			Name:    string(field),
			Label:   field.Label(),
			Type:    field.InputType(),
			Value:   f.Value(field),
			Missing: missing[field],
		})
	}
	return fv
}
