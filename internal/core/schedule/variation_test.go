package schedule

import (
	"testing"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveAmount_NoVariation(t *testing.T) {
	def := decimal.NewFromInt(1200)
	got := ResolveAmount(nil, "item-1", domain.Expense, 2024, time.June, def)
	assert.True(t, got.Equal(def), "no variation must return exactly the default")
}

func TestResolveAmount_ExactTupleMatch(t *testing.T) {
	def := decimal.NewFromInt(1200)
	variations := []domain.MonthlyVariation{
		{VariationID: "v-1", FixedItemID: "item-1", Kind: domain.Expense, Year: 2024, Month: time.June, Amount: decimal.NewFromInt(1350)},
	}

	// Matching tuple resolves to the override.
	got := ResolveAmount(variations, "item-1", domain.Expense, 2024, time.June, def)
	assert.True(t, got.Equal(decimal.NewFromInt(1350)))

	// Any key off by one resolves to the default.
	for name, args := range map[string]struct {
		id    string
		kind  domain.Kind
		year  int
		month time.Month
	}{
		"different month": {"item-1", domain.Expense, 2024, time.May},
		"different year":  {"item-1", domain.Expense, 2023, time.June},
		"different kind":  {"item-1", domain.Income, 2024, time.June},
		"different item":  {"item-2", domain.Expense, 2024, time.June},
	} {
		got := ResolveAmount(variations, args.id, args.kind, args.year, args.month, def)
		assert.True(t, got.Equal(def), name)
	}
}

func TestFindVariation(t *testing.T) {
	variations := []domain.MonthlyVariation{
		{VariationID: "v-1", FixedItemID: "item-1", Kind: domain.Income, Year: 2025, Month: time.January, Amount: decimal.NewFromInt(5000)},
	}

	v, ok := FindVariation(variations, "item-1", domain.Income, 2025, time.January)
	assert.True(t, ok)
	assert.Equal(t, "v-1", v.VariationID)

	_, ok = FindVariation(variations, "item-1", domain.Income, 2025, time.February)
	assert.False(t, ok)
}
