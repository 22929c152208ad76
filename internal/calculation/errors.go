package calculation

import (
	"fmt"
	"strings"
)

// ValidationError collects every problem found in a raw answer set. It is
// the only error Calculate returns for bad input; nothing past validation
// re-validates.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) empty() bool {
	return len(e.Problems) == 0
}
