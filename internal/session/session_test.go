package session

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/config"
)

func testPricing() config.PerkPricing {
	return config.DefaultGameConfig().Perks
}

func TestPurchaseFlow(t *testing.T) {
	s := New(testPricing())
	s.EndRound(150)

	// Affordable perk
	result, msg := s.Purchase(PerkSpeed)
	if result != Purchased {
		t.Fatalf("Purchase(PerkSpeed) = %v (%s), expected Purchased", result, msg)
	}
	if s.Currency() != 50 {
		t.Errorf("Currency after purchase = %d, expected 50", s.Currency())
	}
	if !s.Owns(PerkSpeed) {
		t.Error("Speed perk should be owned")
	}

	// Buying twice
	result, _ = s.Purchase(PerkSpeed)
	if result != AlreadyOwned {
		t.Errorf("Second purchase = %v, expected AlreadyOwned", result)
	}
	if s.Currency() != 50 {
		t.Error("Failed purchase must not charge")
	}

	// Too expensive now
	result, _ = s.Purchase(PerkSalary)
	if result != CannotAfford {
		t.Errorf("Unaffordable purchase = %v, expected CannotAfford", result)
	}
}

func TestRoundConfigFromPerks(t *testing.T) {
	s := New(testPricing())

	base := s.RoundConfig()
	if base.SpeedBonus != 0 || base.CarryBonus != 0 || base.RewardMultiplier != 1 {
		t.Errorf("Empty session RoundConfig = %+v, expected zero bonuses and 1x rewards", base)
	}

	s.EndRound(500)
	s.Purchase(PerkSpeed)
	s.Purchase(PerkHolding)
	s.Purchase(PerkSalary)

	rc := s.RoundConfig()
	if rc.SpeedBonus != 3 {
		t.Errorf("SpeedBonus = %v, expected 3", rc.SpeedBonus)
	}
	if rc.CarryBonus != 1 {
		t.Errorf("CarryBonus = %d, expected 1", rc.CarryBonus)
	}
	if rc.RewardMultiplier != 2 {
		t.Errorf("RewardMultiplier = %d, expected 2", rc.RewardMultiplier)
	}
}

func TestEndRoundReplacesBalance(t *testing.T) {
	s := New(testPricing())
	s.EndRound(150)
	s.Purchase(PerkSpeed) // 50 left
	s.EndRound(80)
	if s.Currency() != 80 {
		t.Errorf("Currency = %d, expected 80 (balance replaced each round)", s.Currency())
	}
	if !s.Owns(PerkSpeed) {
		t.Error("Perks persist across rounds")
	}
}

func TestReset(t *testing.T) {
	s := New(testPricing())
	s.EndRound(500)
	s.Purchase(PerkSalary)

	s.Reset()
	if s.Currency() != 0 {
		t.Error("Reset should clear currency")
	}
	if s.Owns(PerkSalary) {
		t.Error("Reset should clear purchased perks")
	}
	if s.RoundConfig().RewardMultiplier != 1 {
		t.Error("Reset session should yield 1x rewards")
	}
}

func TestNormalize(t *testing.T) {
	var rc RoundConfig
	if rc.Normalize().RewardMultiplier != 1 {
		t.Error("Normalize should raise zero multiplier to 1")
	}
}
