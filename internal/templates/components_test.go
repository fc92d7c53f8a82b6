package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/form"
	"github.com/csg33k/employee-manager/internal/shell"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

var ada = domain.Employee{ID: "1", Name: "Ada", Email: "ada@x.io", Position: "Eng", Department: "R&D"}

func TestPage_Loading(t *testing.T) {
	out := renderString(t, Page(NewAppView(shell.Initial(), form.New(nil, nil, nil), false)))

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `hx-trigger="load"`)
	assert.Contains(t, out, "Loading employees...")
	assert.NotContains(t, out, "<table>")
}

func TestApp_Empty(t *testing.T) {
	st := shell.State{Employees: []domain.Employee{}}
	out := renderString(t, App(NewAppView(st, form.New(nil, nil, nil), false)))

	assert.Contains(t, out, "No employees found")
	assert.NotContains(t, out, "<table>")
	assert.NotContains(t, out, `hx-trigger="load"`)
}

func TestApp_Table(t *testing.T) {
	grace := domain.Employee{ID: "a b", Name: "Grace", Email: "g@x.io", Position: "Adm", Department: "Navy"}
	st := shell.State{Employees: []domain.Employee{ada, grace}}
	out := renderString(t, App(NewAppView(st, form.New(nil, nil, nil), false)))

	require.Contains(t, out, "<table>")
	for _, h := range []string{"<th>Name</th>", "<th>Email</th>", "<th>Position</th>", "<th>Department</th>"} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "R&amp;D")
	assert.Less(t, bytes.Index([]byte(out), []byte("Ada")), bytes.Index([]byte(out), []byte("Grace")))
	assert.Contains(t, out, `hx-get="/employees/1/edit"`)
	assert.Contains(t, out, `hx-delete="/employees/a%20b?confirm=yes"`)
	assert.Contains(t, out, `hx-confirm="Are you sure you want to delete this employee?"`)
}

func TestApp_ErrorBanner(t *testing.T) {
	st := shell.State{Employees: []domain.Employee{}, Error: "Failed to fetch employees. Please try again later."}
	out := renderString(t, App(NewAppView(st, form.New(nil, nil, nil), false)))

	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "Failed to fetch employees. Please try again later.")
	assert.Contains(t, out, `hx-post="/error/dismiss"`)
}

func TestApp_CreateModal(t *testing.T) {
	st := shell.State{Employees: []domain.Employee{}, Modal: shell.Modal{Mode: shell.ModalCreating}}
	f := form.New(nil, nil, nil).With(form.FieldName, "Ada")
	out := renderString(t, App(NewAppView(st, f, true)))

	assert.Contains(t, out, "Add New Employee")
	assert.Contains(t, out, `hx-post="/employees"`)
	assert.Contains(t, out, `value="Ada"`)
	assert.Contains(t, out, `type="email"`)
	assert.Contains(t, out, `hx-post="/modal/close"`)
	// email, position and department are flagged
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("Please fill out this field.")))
}

func TestApp_EditModal(t *testing.T) {
	st := shell.State{Employees: []domain.Employee{ada}, Modal: shell.Modal{Mode: shell.ModalEditing, Target: &ada}}
	out := renderString(t, App(NewAppView(st, SeededForm(st), false)))

	assert.Contains(t, out, "Edit Employee")
	assert.Contains(t, out, `hx-put="/employees/1"`)
	assert.Contains(t, out, `value="ada@x.io"`)
	assert.NotContains(t, out, "Please fill out this field.")
}

func TestSeededForm(t *testing.T) {
	assert.Equal(t, domain.EmployeeFormData{}, SeededForm(shell.State{}).Data())

	st := shell.State{Modal: shell.Modal{Mode: shell.ModalEditing, Target: &ada}}
	assert.Equal(t, ada.FormData(), SeededForm(st).Data())
}
