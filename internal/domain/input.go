package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BudgetAnswer carries the marketing-budget wizard answer as it arrives: a
// plain number, a numeric string, or one of the range labels offered for the
// selected business size. The normalizer resolves it to a number.
type BudgetAnswer struct {
	Label   string
	Amount  decimal.Decimal
	Numeric bool
}

// BudgetFromAmount builds a numeric answer.
func BudgetFromAmount(amount float64) BudgetAnswer {
	return BudgetAnswer{Amount: decimal.NewFromFloat(amount), Numeric: true}
}

// BudgetFromLabel builds a range-label answer.
func BudgetFromLabel(label string) BudgetAnswer {
	return BudgetAnswer{Label: label}
}

// IsZero reports whether no answer was given at all.
func (b BudgetAnswer) IsZero() bool {
	return !b.Numeric && b.Label == ""
}

func (b *BudgetAnswer) set(raw string) {
	raw = strings.TrimSpace(raw)
	if d, err := decimal.NewFromString(raw); err == nil {
		b.Amount = d
		b.Numeric = true
		return
	}
	b.Label = raw
	b.Numeric = false
}

// UnmarshalJSON accepts either a JSON number or a string.
func (b *BudgetAnswer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.set(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("marketing budget must be a number or a range label: %w", err)
	}
	b.Amount = decimal.NewFromFloat(f)
	b.Numeric = true
	return nil
}

// MarshalJSON emits the numeric value when one is known and the raw label
// otherwise, so a round-trip preserves the answer.
func (b BudgetAnswer) MarshalJSON() ([]byte, error) {
	if b.Numeric {
		return []byte(b.Amount.String()), nil
	}
	return json.Marshal(b.Label)
}

// UnmarshalYAML accepts either a YAML scalar number or a string.
func (b *BudgetAnswer) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("marketing budget must be a scalar, got %v", value.Kind)
	}
	b.set(value.Value)
	return nil
}

// String renders the answer for messages and cache keys.
func (b BudgetAnswer) String() string {
	if b.Numeric {
		return b.Amount.String()
	}
	return b.Label
}

// RawInput is the wizard's answer set as collected across the steps, before
// normalization. Optional numeric fields use zero to mean "not answered".
type RawInput struct {
	Industry           string       `json:"industry" yaml:"industry"`
	BusinessSize       string       `json:"business_size" yaml:"business_size"`
	MarketingBudget    BudgetAnswer `json:"marketing_budget" yaml:"marketing_budget"`
	MarketerType       string       `json:"marketer_type" yaml:"marketer_type"`
	CurrentTools       []string     `json:"current_tools" yaml:"current_tools"`
	TeamSize           int          `json:"team_size" yaml:"team_size"`
	NewClientsPerMonth int          `json:"new_clients_per_month" yaml:"new_clients_per_month"`
	AverageCheck       float64      `json:"average_check" yaml:"average_check"`
}

// FormInput is the normalized form: budget resolved to a number, every
// optional field defaulted. Everything downstream of the normalizer consumes
// this and only this.
type FormInput struct {
	Industry           string          `json:"industry"`
	BusinessSize       string          `json:"business_size"`
	MarketingBudget    decimal.Decimal `json:"marketing_budget"`
	MarketerType       string          `json:"marketer_type"`
	CurrentTools       []string        `json:"current_tools"`
	TeamSize           int             `json:"team_size"`
	NewClientsPerMonth decimal.Decimal `json:"new_clients_per_month"`
	AverageCheck       decimal.Decimal `json:"average_check"`
}

// CacheKey returns the canonical encoding of the fields that determine a
// calculation result, for memoization.
func (in FormInput) CacheKey() string {
	tools := make([]string, len(in.CurrentTools))
	copy(tools, in.CurrentTools)
	key := struct {
		Industry     string   `json:"industry"`
		BusinessSize string   `json:"business_size"`
		Budget       string   `json:"budget"`
		MarketerType string   `json:"marketer_type"`
		Tools        []string `json:"tools"`
		Clients      string   `json:"clients"`
		AverageCheck string   `json:"average_check"`
	}{
		Industry:     in.Industry,
		BusinessSize: in.BusinessSize,
		Budget:       in.MarketingBudget.String(),
		MarketerType: in.MarketerType,
		Tools:        tools,
		Clients:      in.NewClientsPerMonth.String(),
		AverageCheck: in.AverageCheck.String(),
	}
	data, err := json.Marshal(key)
	if err != nil {
		// The struct above is always marshalable.
		return strconv.Quote(in.Industry + "|" + in.BusinessSize)
	}
	return string(data)
}
