package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// LoadFormInput reads a wizard answer set from a YAML file for the CLI path.
// It only checks that something was answered at all; full validation is the
// engine's job so that CLI and HTTP callers get identical error messages.
func LoadFormInput(filename string) (*domain.RawInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw domain.RawInput
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw.Industry == "" && raw.BusinessSize == "" && raw.MarketingBudget.IsZero() {
		return nil, fmt.Errorf("input file %s contains no answers", filename)
	}
	return &raw, nil
}

// CreateExampleInput returns a filled-in answer set matching the built-in
// restaurant profile, for the `example` subcommand.
func CreateExampleInput() *domain.RawInput {
	return &domain.RawInput{
		Industry:           "restaurant",
		BusinessSize:       "medium",
		MarketingBudget:    domain.BudgetFromAmount(3000),
		MarketerType:       domain.TierFullTime,
		CurrentTools:       []string{"facebook_ads", "analytics"},
		TeamSize:           2,
		NewClientsPerMonth: 120,
		AverageCheck:       45,
	}
}

// ExampleInputYAML renders CreateExampleInput as YAML.
func ExampleInputYAML() (string, error) {
	example := CreateExampleInput()
	wire := struct {
		Industry           string   `yaml:"industry"`
		BusinessSize       string   `yaml:"business_size"`
		MarketingBudget    string   `yaml:"marketing_budget"`
		MarketerType       string   `yaml:"marketer_type"`
		CurrentTools       []string `yaml:"current_tools"`
		TeamSize           int      `yaml:"team_size"`
		NewClientsPerMonth int      `yaml:"new_clients_per_month"`
		AverageCheck       float64  `yaml:"average_check"`
	}{
		Industry:           example.Industry,
		BusinessSize:       example.BusinessSize,
		MarketingBudget:    example.MarketingBudget.String(),
		MarketerType:       example.MarketerType,
		CurrentTools:       example.CurrentTools,
		TeamSize:           example.TeamSize,
		NewClientsPerMonth: example.NewClientsPerMonth,
		AverageCheck:       example.AverageCheck,
	}
	out, err := yaml.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to marshal example input: %w", err)
	}
	return string(out), nil
}
