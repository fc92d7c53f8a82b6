package domain

// Employee is a record owned by the remote employee store.
// ID and CreatedAt are assigned by the store and are never produced or
// interpreted by this application.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
}

// EmployeeFormData is the editable subset of an Employee. It is the body of
// every create and update request; updates replace the whole record.
type EmployeeFormData struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required"`
	Position   string `json:"position"   validate:"required"`
	Department string `json:"department" validate:"required"`
}

// FormData returns the editable fields of e.
func (e Employee) FormData() EmployeeFormData {
	return EmployeeFormData{
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
	}
}
