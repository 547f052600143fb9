package cli

import (
	"sort"

	"github.com/dkrasnovs/blogspace/internal/client/forms"
)

// printFieldErrors renders validation messages inline, one line per field,
// in a stable order.
func printFieldErrors(errs forms.Errors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		printlnFn(field + ": " + errs[field])
	}
}
