package templates

import (
	"net/url"

	"github.com/csg33k/employee-manager/internal/shell"
)

// itemPath builds the UI path of one employee, used in hx-* attributes.
func itemPath(id string) string {
	return "/employees/" + url.PathEscape(id)
}

func deletePrompt() string { return shell.DeletePrompt }
