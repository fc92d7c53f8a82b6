// Package form is the employee form: a controlled copy of the four editable
// fields, seeded from an existing record or blank, handed to a submit
// callback only when every field is filled in.
package form

import (
	"net/url"
	"strings"

	"github.com/csg33k/employee-manager/internal/domain"
)

// Field names double as HTML input names.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPosition   Field = "position"
	FieldDepartment Field = "department"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPosition, FieldDepartment}

// Label returns the display label for f.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPosition:
		return "Position"
	case FieldDepartment:
		return "Department"
	}
	return string(f)
}

// InputType is the HTML input type used to render f.
func (f Field) InputType() string {
	if f == FieldEmail {
		return "email"
	}
	return "text"
}

// RequiredError is returned by Submit while any field is empty.
type RequiredError struct {
	Fields []Field
}

func (e *RequiredError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "required fields missing: " + strings.Join(names, ", ")
}

// Form is a value type: With returns a modified copy.
type Form struct {
	data     domain.EmployeeFormData
	onSubmit func(domain.EmployeeFormData)
	onCancel func()
}

// New seeds a form from initial, or from four empty strings when initial is
// nil. Either callback may be nil.
func New(initial *domain.EmployeeFormData, onSubmit func(domain.EmployeeFormData), onCancel func()) Form {
	f := Form{onSubmit: onSubmit, onCancel: onCancel}
	if initial != nil {
		f.data = *initial
	}
	return f
}

// FromValues builds a form from posted HTML form values.
func FromValues(v url.Values, onSubmit func(domain.EmployeeFormData), onCancel func()) Form {
	f := New(nil, onSubmit, onCancel)
	for _, field := range Fields {
		f = f.With(field, v.Get(string(field)))
	}
	return f
}

// Data returns the current field values.
func (f Form) Data() domain.EmployeeFormData { return f.data }

// Value returns the current value of field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.data.Name
	case FieldEmail:
		return f.data.Email
	case FieldPosition:
		return f.data.Position
	case FieldDepartment:
		return f.data.Department
	}
	return ""
}

// With returns a copy of f with field set to value. Unknown fields are
// ignored.
func (f Form) With(field Field, value string) Form {
	d := f.data
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPosition:
		d.Position = value
	case FieldDepartment:
		d.Department = value
	default:
		return f
	}
	f.data = d
	return f
}

// Missing returns the empty fields in display order.
func (f Form) Missing() []Field {
	var missing []Field
	for _, name := range domain.MissingFields(f.data.Validate()) {
		missing = append(missing, Field(name))
	}
	return missing
}

// Submit hands the current data to the submit callback unchanged, or returns
// a *RequiredError without calling it.
func (f Form) Submit() error {
	if missing := f.Missing(); len(missing) > 0 {
		return &RequiredError{Fields: missing}
	}
	if f.onSubmit != nil {
		f.onSubmit(f.data)
	}
	return nil
}

func (f Form) Cancel() {
	if f.onCancel != nil {
		f.onCancel()
	}
}
