package models

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/rng"
)

var (
	// ErrUnaffordable is returned when a price exceeds the player's money.
	ErrUnaffordable = errors.New("not enough money")
	// ErrUnavailable is returned when a part is not for sale at this tier.
	ErrUnavailable = errors.New("not available yet")
)

// Rules are the economy's tunables.
type Rules struct {
	StartingMoney int
	MaxRounds     int
	TierThreshold int
	RoundRepair   rng.Range
	RoundPrize    rng.Range
}

// Economy holds money and progression. It is mutated only from the tick
// goroutine.
type Economy struct {
	Money              int `json:"money"`
	CompletedJumps     int `json:"completed_jumps"`
	TotalCostThisBuild int `json:"total_cost_this_build"`
	LastPieceCost      int `json:"last_piece_cost"`
	PendingRepairCost  int `json:"pending_repair_cost"`
	PendingPrizeMoney  int `json:"pending_prize_money"`

	rules Rules
	src   rng.Source
}

// NewEconomy creates an economy at the start of a game.
func NewEconomy(rules Rules, src rng.Source) *Economy {
	e := &Economy{rules: rules, src: src}
	e.Reset()
	return e
}

// Reset returns to a fresh game.
func (e *Economy) Reset() {
	e.Money = e.rules.StartingMoney
	e.CompletedJumps = 0
	e.TotalCostThisBuild = 0
	e.LastPieceCost = 0
	e.PendingRepairCost = 0
	e.PendingPrizeMoney = 0
}

// Tier is the current price tier.
func (e *Economy) Tier() int {
	return part.Tier(e.CompletedJumps, e.rules.TierThreshold)
}

// Quote returns what id costs right now.
func (e *Economy) Quote(c *part.Catalog, cat part.Category, id string) (int, error) {
	price, ok := c.Price(cat, id, e.Tier())
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", cat, id, ErrUnavailable)
	}
	if price > e.Money {
		return price, fmt.Errorf("%s %q costs %d, have %d: %w", cat, id, price, e.Money, ErrUnaffordable)
	}
	return price, nil
}

// Purchase buys id. On failure nothing changes.
func (e *Economy) Purchase(c *part.Catalog, cat part.Category, id string) (int, error) {
	price, err := e.Quote(c, cat, id)
	if err != nil {
		return 0, err
	}
	e.Money -= price
	e.TotalCostThisBuild += price
	e.LastPieceCost = price
	return price, nil
}

// Refund returns the money spent on the current build.
func (e *Economy) Refund() int {
	amount := e.TotalCostThisBuild
	e.Money += amount
	e.TotalCostThisBuild = 0
	e.LastPieceCost = 0
	return amount
}

// ResetBuildCost starts a new cost accumulator without refunding.
func (e *Economy) ResetBuildCost() {
	e.TotalCostThisBuild = 0
	e.LastPieceCost = 0
}

// CanAfford reports whether amount can be paid.
func (e *Economy) CanAfford(amount int) bool {
	return e.Money >= amount
}

// AwardPrize pays out the round's prize.
func (e *Economy) AwardPrize() {
	e.Money += e.PendingPrizeMoney
}

// ChargeRepair deducts amount. Callers check CanAfford first.
func (e *Economy) ChargeRepair(amount int) {
	e.Money -= amount
}

// Roll draws from r with the economy's random source.
func (e *Economy) Roll(r rng.Range) int {
	return r.Roll(e.src)
}

// AdvanceRound moves to the next jump round. It reports true, without
// changing anything, once the final round has already been cleared.
func (e *Economy) AdvanceRound() (won bool) {
	if e.CompletedJumps >= e.rules.MaxRounds {
		return true
	}
	e.CompletedJumps++
	e.ResetBuildCost()
	e.PendingRepairCost = e.Roll(e.rules.RoundRepair)
	e.PendingPrizeMoney = e.Roll(e.rules.RoundPrize)
	return false
}
