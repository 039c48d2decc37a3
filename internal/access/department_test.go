package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDepartment(t *testing.T) {
	tests := map[string]string{
		"Human Resources":        "HR",
		"hr":                     "HR",
		"H.R.":                   "HR",
		"Information Technology": "IT",
		"ops":                    "Operations",
		"Accounting":             "Finance",
		" Sales ":                "Sales",
		"Legal":                  "Legal",
		"":                       "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeDepartment(in), in)
	}
}
