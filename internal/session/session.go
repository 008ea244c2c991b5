// Package session manages the between-rounds economy: converting round
// scores into spendable currency and applying purchased perks to the next
// round. Session state persists across "play again" cycles and resets when
// the player returns to the main menu.
package session

import (
	"fmt"

	"github.com/vovakirdan/times-kitchen/internal/config"
)

// PerkKind identifies a purchasable perk.
type PerkKind int

const (
	PerkSpeed PerkKind = iota
	PerkHolding
	PerkSalary
)

// String returns the stable identifier for the perk.
func (k PerkKind) String() string {
	switch k {
	case PerkSpeed:
		return "speed"
	case PerkHolding:
		return "holding"
	case PerkSalary:
		return "salary"
	default:
		return "unknown"
	}
}

// Perk describes a store entry.
type Perk struct {
	Kind        PerkKind
	Name        string
	Description string
	Cost        int
}

// PurchaseResult is the outcome of a purchase attempt.
type PurchaseResult int

const (
	Purchased PurchaseResult = iota
	AlreadyOwned
	CannotAfford
)

// RoundConfig is the value object assembled from the session's perk set and
// passed into round construction. A zero RoundConfig means an unmodified
// round except for RewardMultiplier, which is normalized to 1 by Normalize.
type RoundConfig struct {
	SpeedBonus       float64
	CarryBonus       int
	RewardMultiplier int
}

// Normalize returns the config with a valid reward multiplier.
func (rc RoundConfig) Normalize() RoundConfig {
	if rc.RewardMultiplier < 1 {
		rc.RewardMultiplier = 1
	}
	return rc
}

// Session tracks currency and purchased perks across consecutive rounds.
type Session struct {
	pricing   config.PerkPricing
	currency  int
	purchased map[PerkKind]bool
}

// New creates an empty session with the given perk pricing.
func New(pricing config.PerkPricing) *Session {
	return &Session{
		pricing:   pricing,
		purchased: make(map[PerkKind]bool),
	}
}

// Perks returns the store catalog in display order.
func (s *Session) Perks() []Perk {
	return []Perk{
		{
			Kind:        PerkSpeed,
			Name:        "+1 Speed",
			Description: "Increase player movement speed",
			Cost:        s.pricing.SpeedCost,
		},
		{
			Kind:        PerkHolding,
			Name:        "+1 Holding",
			Description: "Hold one more item",
			Cost:        s.pricing.HoldingCost,
		},
		{
			Kind:        PerkSalary,
			Name:        "2x Salary",
			Description: "Double all order rewards",
			Cost:        s.pricing.SalaryCost,
		},
	}
}

// Currency returns the spendable balance.
func (s *Session) Currency() int {
	return s.currency
}

// Owns reports whether the perk has been purchased this session.
func (s *Session) Owns(kind PerkKind) bool {
	return s.purchased[kind]
}

// EndRound converts a finished round's score into the spendable balance.
// Matching the store's original behavior, the balance is replaced, not
// accumulated: leftover change from previous visits is superseded.
func (s *Session) EndRound(score int) {
	s.currency = score
}

// Purchase attempts to buy the given perk.
// Each perk can be owned at most once per session.
func (s *Session) Purchase(kind PerkKind) (PurchaseResult, string) {
	var perk Perk
	found := false
	for _, p := range s.Perks() {
		if p.Kind == kind {
			perk = p
			found = true
			break
		}
	}
	if !found {
		return CannotAfford, "Unknown perk"
	}

	if s.purchased[kind] {
		return AlreadyOwned, "Already owned!"
	}
	if s.currency < perk.Cost {
		return CannotAfford, "Not enough money!"
	}

	s.currency -= perk.Cost
	s.purchased[kind] = true
	return Purchased, fmt.Sprintf("Purchased %s!", perk.Name)
}

// RoundConfig assembles the next round's modifiers from the owned perks.
func (s *Session) RoundConfig() RoundConfig {
	rc := RoundConfig{RewardMultiplier: 1}
	if s.purchased[PerkSpeed] {
		rc.SpeedBonus = s.pricing.SpeedBonus
	}
	if s.purchased[PerkHolding] {
		rc.CarryBonus = s.pricing.HoldingBonus
	}
	if s.purchased[PerkSalary] {
		rc.RewardMultiplier = s.pricing.SalaryMultiplier
	}
	return rc
}

// Reset clears all session state. Called when returning to the main menu.
func (s *Session) Reset() {
	s.currency = 0
	s.purchased = make(map[PerkKind]bool)
}
