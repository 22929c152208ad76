package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIndustryTableIsValid(t *testing.T) {
	table := DefaultIndustryTable()
	require.NoError(t, ValidateIndustryTable(table))
	assert.Equal(t, 6, table.Len())

	for _, key := range []string{"restaurant", "retail", "ecommerce", "beauty", "fitness", "auto_service"} {
		_, ok := table.Profile(key)
		assert.True(t, ok, "missing built-in industry %s", key)
	}
}

func TestLoadIndustryTable(t *testing.T) {
	table, err := LoadIndustryTable(filepath.Join("testdata", "industries.yaml"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	p, ok := table.Profile("coffee_shop")
	require.True(t, ok)
	assert.Equal(t, "Coffee Shop", p.DisplayName)
	assert.Len(t, p.SizeOptions, 2)

	assert.Equal(t, "0.8", p.SizeMultiplier("small").String())
	assert.Equal(t, "1600", p.MarketerSalary("full_time").String())

	ranges := p.BudgetRangesFor("medium")
	require.Len(t, ranges, 2)
	assert.Equal(t, "1750", ranges[0].Value.String())
}

func TestLoadIndustryTableMissingFile(t *testing.T) {
	_, err := LoadIndustryTable(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadIndustryTableEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("industries: []\n"), 0o644))

	_, err := LoadIndustryTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defines no industries")
}

func TestLoadIndustryTableRejectsSizeWithoutRanges(t *testing.T) {
	content := `industries:
  - key: broken
    sizes:
      - value: small
        label: Small
        multiplier: 1.0
    budget_ranges: {}
    calculations:
      tools_multiplier: 2.0
`
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadIndustryTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no budget ranges")
}

func TestValidateIndustryTableRejectsBadEffectiveness(t *testing.T) {
	table := DefaultIndustryTable()
	p, ok := table.Profile("restaurant")
	require.True(t, ok)

	ranges := p.MarketingBudgetRanges["small"]
	require.NotEmpty(t, ranges)
	ranges[0].Effectiveness = decimal.NewFromInt(2)

	err := ValidateIndustryTable(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effectiveness")
}
