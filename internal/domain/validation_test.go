package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-manager/internal/domain"
)

func TestEmployeeFormData_Validate(t *testing.T) {
	full := domain.EmployeeFormData{Name: "Ada", Email: "ada@x.io", Position: "Eng", Department: "R&D"}
	require.NoError(t, full.Validate())

	tests := []struct {
		name string
		data domain.EmployeeFormData
		want []string
	}{
		{"all empty", domain.EmployeeFormData{}, []string{"name", "email", "position", "department"}},
		{"email and department", domain.EmployeeFormData{Name: "Ada", Position: "Eng"}, []string{"email", "department"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.want, domain.MissingFields(err))
		})
	}
}

func TestEmployeeFormData_WhitespaceIsFilled(t *testing.T) {
	d := domain.EmployeeFormData{Name: " ", Email: "\t", Position: " ", Department: " "}
	assert.NoError(t, d.Validate())
}

func TestMissingFields_OtherErrors(t *testing.T) {
	assert.Nil(t, domain.MissingFields(nil))
	assert.Nil(t, domain.MissingFields(errors.New("boom")))
}
