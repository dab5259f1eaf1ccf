// Package classify assigns a municipal department to a complaint based on
// keywords found in its description.
package classify

import (
	"strings"

	"github.com/civicgrid/complaints-platform/internal/domain"
)

// departmentKeywords pairs a department with its trigger words. Order
// matters: the first department with a matching keyword wins, so entries
// earlier in the slice take precedence when a description mentions
// several topics.
var departmentKeywords = []struct {
	department domain.Department
	keywords   []string
}{
	{domain.DepartmentSeguridad, []string{"seguridad", "delito", "robo"}},
	{domain.DepartmentObras, []string{"bache", "iluminación", "acoso"}},
	{domain.DepartmentAmbiente, []string{"basura", "contaminación", "ruido"}},
}

// Classify maps a free-text description to a department. Matching is a
// case-insensitive substring scan; descriptions that match no keyword go
// to the catch-all department.
func Classify(description string) domain.Department {
	lowered := strings.ToLower(description)
	for _, entry := range departmentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.department
			}
		}
	}
	return domain.DepartmentOtro
}
