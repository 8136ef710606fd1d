// internal/models/assessment.go
package models

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultEmployeeCount is used whenever the survey employee range cannot be parsed.
const DefaultEmployeeCount = 50

// AssessmentInput is one company survey submission.
type AssessmentInput struct {
	Industry      string   `json:"industry"`
	EmployeeCount string   `json:"employeeCount"`
	Challenges    []string `json:"challenges"`
	Goals         []string `json:"goals"`
	BudgetRange   string   `json:"budgetRange"`
	Location      string   `json:"location"`
	PainPoints    string   `json:"painPoints,omitempty"`
}

// Employees returns the lower bound of the employee range ("50-100" -> 50, "500+" -> 500).
// Unparsable or non-positive values fall back to DefaultEmployeeCount.
func (a AssessmentInput) Employees() int {
	return ParseEmployeeCount(a.EmployeeCount)
}

// HasChallenge reports whether tag is one of the submitted challenges.
func (a AssessmentInput) HasChallenge(tag string) bool {
	return contains(a.Challenges, tag)
}

// HasGoal reports whether tag is one of the submitted goals.
func (a AssessmentInput) HasGoal(tag string) bool {
	return contains(a.Goals, tag)
}

// ParseEmployeeCount reads the leading integer of an employee range.
func ParseEmployeeCount(raw string) int {
	head := strings.TrimSpace(strings.SplitN(raw, "-", 2)[0])
	end := 0
	for end < len(head) && unicode.IsDigit(rune(head[end])) {
		end++
	}
	if end == 0 {
		return DefaultEmployeeCount
	}
	n, err := strconv.Atoi(head[:end])
	if err != nil || n < 1 {
		return DefaultEmployeeCount
	}
	return n
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
