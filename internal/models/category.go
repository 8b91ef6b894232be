package models

import (
	"fmt"
	"strings"
)

// Categories is the closed set of categories an expense may carry.
// Matching is case-sensitive.
var Categories = []string{"Food", "Education", "Entertainment"}

// CategoryError reports a category value outside the allowed set.
type CategoryError struct {
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("Invalid category. Must be one of: %s", strings.Join(Categories, ", "))
}

// ValidateCategory checks membership in the allowed category set. A nil
// category is treated as unset and passes, which partial updates rely on.
func ValidateCategory(category *string) error {
	if category == nil {
		return nil
	}
	for _, c := range Categories {
		if c == *category {
			return nil
		}
	}
	return &CategoryError{Value: *category}
}
