package form_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/form"
)

func TestNew_DefaultsToBlank(t *testing.T) {
	f := form.New(nil, nil, nil)
	assert.Equal(t, domain.EmployeeFormData{}, f.Data())
	assert.Equal(t, form.Fields, f.Missing())
}

func TestSubmit_RoundTripsSeed(t *testing.T) {
	e := domain.Employee{
		ID:         "3",
		Name:       "Linus",
		Email:      "linus@example.com",
		Position:   "Maintainer",
		Department: "Kernel",
		CreatedAt:  "2025-01-01T00:00:00.000Z",
	}
	seed := e.FormData()

	var got *domain.EmployeeFormData
	f := form.New(&seed, func(d domain.EmployeeFormData) { got = &d }, nil)
	require.NoError(t, f.Submit())
	require.NotNil(t, got)
	assert.Equal(t, seed, *got)
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	orig := form.New(nil, nil, nil)
	next := orig.With(form.FieldName, "Ada")

	assert.Equal(t, "", orig.Value(form.FieldName))
	assert.Equal(t, "Ada", next.Value(form.FieldName))

	seed := domain.EmployeeFormData{Name: "A", Email: "a@x.io", Position: "P", Department: "D"}
	seeded := form.New(&seed, nil, nil)
	seeded.With(form.FieldDepartment, "Other")
	assert.Equal(t, "D", seeded.Value(form.FieldDepartment))
	assert.Equal(t, "D", seed.Department)
}

func TestWith_UnknownFieldIgnored(t *testing.T) {
	f := form.New(nil, nil, nil).With(form.Field("salary"), "1000")
	assert.Equal(t, domain.EmployeeFormData{}, f.Data())
}

func TestSubmit_BlocksOnMissingFields(t *testing.T) {
	called := false
	f := form.New(nil, func(domain.EmployeeFormData) { called = true }, nil).
		With(form.FieldName, "Ada").
		With(form.FieldPosition, "Engineer")

	err := f.Submit()
	var reqErr *form.RequiredError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, []form.Field{form.FieldEmail, form.FieldDepartment}, reqErr.Fields)
	assert.Equal(t, "required fields missing: email, department", err.Error())
	assert.False(t, called)
}

func TestSubmit_WhitespaceCountsAsFilled(t *testing.T) {
	f := form.New(nil, nil, nil)
	for _, field := range form.Fields {
		f = f.With(field, " ")
	}
	assert.Empty(t, f.Missing())
	assert.NoError(t, f.Submit())
}

func TestCancel(t *testing.T) {
	cancelled := false
	submitted := false
	f := form.New(nil, func(domain.EmployeeFormData) { submitted = true }, func() { cancelled = true })
	f.Cancel()
	assert.True(t, cancelled)
	assert.False(t, submitted)

	// nil callbacks are safe
	form.New(nil, nil, nil).Cancel()
}

func TestFromValues(t *testing.T) {
	v := url.Values{
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"position":   {"Engineer"},
		"department": {"R&D"},
		"id":         {"should-be-ignored"},
		"createdAt":  {"should-be-ignored"},
	}
	var got domain.EmployeeFormData
	f := form.FromValues(v, func(d domain.EmployeeFormData) { got = d }, nil)
	require.NoError(t, f.Submit())
	assert.Equal(t, domain.EmployeeFormData{
		Name:       "Ada",
		Email:      "ada@example.com",
		Position:   "Engineer",
		Department: "R&D",
	}, got)
}

func TestFieldRendering(t *testing.T) {
	assert.Equal(t, "email", form.FieldEmail.InputType())
	assert.Equal(t, "text", form.FieldName.InputType())
	assert.Equal(t, "Department", form.FieldDepartment.Label())
}
