package models

import (
	"errors"
	"testing"

	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	return Rules{
		StartingMoney: 35,
		MaxRounds:     6,
		TierThreshold: 2,
		RoundRepair:   rng.Range{Min: 4, Max: 6},
		RoundPrize:    rng.Range{Min: 13, Max: 17},
	}
}

func TestPurchaseBuildsDownMoney(t *testing.T) {
	c := part.DefaultCatalog()
	e := NewEconomy(testRules(), rng.New(1))

	for _, p := range []struct {
		cat part.Category
		id  string
	}{
		{part.Chassis, "cart"},
		{part.Wheels, "wheel1"},
		{part.Engine, "coffee"},
	} {
		_, err := e.Purchase(c, p.cat, p.id)
		require.NoError(t, err)
	}

	assert.Equal(t, 12, e.Money)
	assert.Equal(t, 23, e.TotalCostThisBuild)
	assert.Equal(t, 7, e.LastPieceCost)
	assert.Zero(t, e.PendingPrizeMoney, "buying never awards prize money")
}

func TestPurchaseUnaffordable(t *testing.T) {
	c := part.DefaultCatalog()
	e := NewEconomy(testRules(), rng.New(1))
	e.Money = 10

	_, err := e.Purchase(c, part.Chassis, "cart")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnaffordable))
	assert.Equal(t, 10, e.Money)
	assert.Zero(t, e.TotalCostThisBuild)
}

func TestPurchaseUnavailable(t *testing.T) {
	c := part.DefaultCatalog()
	e := NewEconomy(testRules(), rng.New(1))
	e.Money = 100

	_, err := e.Purchase(c, part.Chassis, "chair")
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, 100, e.Money)

	e.CompletedJumps = 2
	price, err := e.Purchase(c, part.Chassis, "chair")
	require.NoError(t, err)
	assert.Equal(t, 25, price)
	assert.Equal(t, 75, e.Money)
}

func TestRefund(t *testing.T) {
	c := part.DefaultCatalog()
	e := NewEconomy(testRules(), rng.New(1))
	_, err := e.Purchase(c, part.Chassis, "toilet")
	require.NoError(t, err)
	_, err = e.Purchase(c, part.Wheels, "wheel4")
	require.NoError(t, err)

	assert.Equal(t, 13, e.Refund())
	assert.Equal(t, 35, e.Money)
	assert.Zero(t, e.TotalCostThisBuild)
}

func TestPrizeAndRepair(t *testing.T) {
	e := NewEconomy(testRules(), rng.New(1))
	e.PendingPrizeMoney = 15
	e.AwardPrize()
	assert.Equal(t, 50, e.Money)

	assert.True(t, e.CanAfford(50))
	assert.False(t, e.CanAfford(51))
	e.ChargeRepair(8)
	assert.Equal(t, 42, e.Money)
}

func TestAdvanceRound(t *testing.T) {
	e := NewEconomy(testRules(), rng.NewSequence(1, 3))
	e.TotalCostThisBuild = 23

	won := e.AdvanceRound()
	assert.False(t, won)
	assert.Equal(t, 1, e.CompletedJumps)
	assert.Equal(t, 5, e.PendingRepairCost)
	assert.Equal(t, 16, e.PendingPrizeMoney)
	assert.Zero(t, e.TotalCostThisBuild)
}

func TestAdvanceRoundRangesWithSeed(t *testing.T) {
	rules := testRules()
	rules.MaxRounds = 1000
	e := NewEconomy(rules, rng.New(99))
	for i := 0; i < 200; i++ {
		require.False(t, e.AdvanceRound())
		assert.True(t, rules.RoundRepair.Contains(e.PendingRepairCost))
		assert.True(t, rules.RoundPrize.Contains(e.PendingPrizeMoney))
	}
}

func TestAdvanceRoundWinsAfterFinalRound(t *testing.T) {
	e := NewEconomy(testRules(), rng.New(1))
	for i := 1; i <= 6; i++ {
		require.False(t, e.AdvanceRound())
		assert.Equal(t, i, e.CompletedJumps)
	}
	assert.True(t, e.AdvanceRound())
	assert.Equal(t, 6, e.CompletedJumps, "never exceeds the final round")
}

func TestTier(t *testing.T) {
	e := NewEconomy(testRules(), rng.New(1))
	assert.Equal(t, 0, e.Tier())
	e.CompletedJumps = 2
	assert.Equal(t, 1, e.Tier())
}
