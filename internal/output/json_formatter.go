package output

import (
	"github.com/goccy/go-json"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// JSONFormatter serializes the result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SavingsResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
