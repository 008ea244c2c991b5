// Package config provides YAML-based game configuration loading for the
// kitchen. Every gameplay tunable lives here; the simulation core never
// hardcodes timing or reward values.
package config

import "github.com/vovakirdan/times-kitchen/internal/catalog"

// GameConfig contains all configuration for a kitchen round.
type GameConfig struct {
	Round    RoundTiming    `yaml:"round"`
	Cooking  CookTimes      `yaml:"cooking"`
	Rewards  Rewards        `yaml:"rewards"`
	Orders   OrderTuning    `yaml:"orders"`
	Dirt     DirtTuning     `yaml:"dirt"`
	Player   PlayerTuning   `yaml:"player"`
	Customer CustomerTuning `yaml:"customer"`
	Perks    PerkPricing    `yaml:"perks"`
}

// RoundTiming defines the round clock.
type RoundTiming struct {
	DurationSeconds   float64 `yaml:"duration_seconds"`    // Full round length (6 game hours)
	HourSeconds       float64 `yaml:"hour_seconds"`        // Real seconds per game hour
	SpawnGraceSeconds float64 `yaml:"spawn_grace_seconds"` // No order spawns inside this end-of-round window
}

// CookTimes defines per-ingredient cook durations in seconds.
type CookTimes struct {
	MeatSeconds    float64 `yaml:"meat_seconds"`
	SausageSeconds float64 `yaml:"sausage_seconds"`
	PastaSeconds   float64 `yaml:"pasta_seconds"`
}

// Rewards defines payouts in dollars.
type Rewards struct {
	Burger   int `yaml:"burger"`
	Hotdog   int `yaml:"hotdog"`
	Pasta    int `yaml:"pasta"`
	Cleaning int `yaml:"cleaning"`
}

// OrderTuning defines order spawn behavior per player count.
type OrderTuning struct {
	PerHourSolo    float64 `yaml:"per_hour_solo"`
	PerHourCoop    float64 `yaml:"per_hour_coop"`
	MaxActiveSolo  int     `yaml:"max_active_solo"`
	MaxActiveCoop  int     `yaml:"max_active_coop"`
	DisplaySeconds float64 `yaml:"display_seconds"` // Completed-order banner lifetime
}

// DirtTuning defines dirt spawning and cleaning.
type DirtTuning struct {
	MaxSpots   int `yaml:"max_spots"`
	CleanTicks int `yaml:"clean_ticks"` // Cleaning animation length in simulation ticks
}

// PlayerTuning defines base player capabilities before perks.
type PlayerTuning struct {
	Speed         float64 `yaml:"speed"` // Playfield units per second
	CarryCapacity int     `yaml:"carry_capacity"`
}

// CustomerTuning defines customer movement and eating.
type CustomerTuning struct {
	Speed      float64 `yaml:"speed"` // Playfield units per second
	EatSeconds float64 `yaml:"eat_seconds"`
}

// PerkPricing defines session store costs and effect sizes.
type PerkPricing struct {
	SpeedCost        int     `yaml:"speed_cost"`
	SpeedBonus       float64 `yaml:"speed_bonus"`
	HoldingCost      int     `yaml:"holding_cost"`
	HoldingBonus     int     `yaml:"holding_bonus"`
	SalaryCost       int     `yaml:"salary_cost"`
	SalaryMultiplier int     `yaml:"salary_multiplier"`
}

// CatalogParams converts the config into catalog tuning parameters.
func (c GameConfig) CatalogParams() catalog.Params {
	return catalog.Params{
		CookTimeMeat:    c.Cooking.MeatSeconds,
		CookTimeSausage: c.Cooking.SausageSeconds,
		CookTimePasta:   c.Cooking.PastaSeconds,
		RewardBurger:    c.Rewards.Burger,
		RewardHotdog:    c.Rewards.Hotdog,
		RewardPasta:     c.Rewards.Pasta,
	}
}

// OrdersPerHour returns the spawn rate for the given player count.
func (c GameConfig) OrdersPerHour(players int) float64 {
	if players >= 2 {
		return c.Orders.PerHourCoop
	}
	return c.Orders.PerHourSolo
}

// MaxActiveOrders returns the concurrent-order cap for the given player count.
func (c GameConfig) MaxActiveOrders(players int) int {
	if players >= 2 {
		return c.Orders.MaxActiveCoop
	}
	return c.Orders.MaxActiveSolo
}

// DefaultGameConfig returns the stock configuration, matching the embedded
// defaults. Used as a last-resort fallback if the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Round: RoundTiming{
			DurationSeconds:   360,
			HourSeconds:       60,
			SpawnGraceSeconds: 10,
		},
		Cooking: CookTimes{
			MeatSeconds:    5,
			SausageSeconds: 4,
			PastaSeconds:   7,
		},
		Rewards: Rewards{
			Burger:   10,
			Hotdog:   8,
			Pasta:    6,
			Cleaning: 3,
		},
		Orders: OrderTuning{
			PerHourSolo:    5,
			PerHourCoop:    10,
			MaxActiveSolo:  8,
			MaxActiveCoop:  12,
			DisplaySeconds: 3,
		},
		Dirt: DirtTuning{
			MaxSpots:   5,
			CleanTicks: 60,
		},
		Player: PlayerTuning{
			Speed:         16,
			CarryCapacity: 3,
		},
		Customer: CustomerTuning{
			Speed:      10,
			EatSeconds: 4,
		},
		Perks: PerkPricing{
			SpeedCost:        100,
			SpeedBonus:       3,
			HoldingCost:      120,
			HoldingBonus:     1,
			SalaryCost:       200,
			SalaryMultiplier: 2,
		},
	}
}
