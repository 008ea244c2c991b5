package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Round.DurationSeconds != 360 {
		t.Errorf("Round duration = %v, expected 360", cfg.Round.DurationSeconds)
	}
	if cfg.Cooking.MeatSeconds != 5 || cfg.Cooking.SausageSeconds != 4 || cfg.Cooking.PastaSeconds != 7 {
		t.Errorf("Cook times = %+v, expected 5/4/7", cfg.Cooking)
	}
	if cfg.Orders.MaxActiveSolo != 8 || cfg.Orders.MaxActiveCoop != 12 {
		t.Errorf("Order caps = %+v, expected 8/12", cfg.Orders)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitchen.yaml")
	custom := []byte("round:\n  duration_seconds: 120\nrewards:\n  burger: 42\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Round.DurationSeconds != 120 {
		t.Errorf("Custom round duration = %v, expected 120", cfg.Round.DurationSeconds)
	}
	if cfg.Rewards.Burger != 42 {
		t.Errorf("Custom burger reward = %d, expected 42", cfg.Rewards.Burger)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/kitchen.yaml"); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestPerPlayerHelpers(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.OrdersPerHour(1) != 5 || cfg.OrdersPerHour(2) != 10 {
		t.Error("OrdersPerHour should be 5 solo, 10 coop")
	}
	if cfg.MaxActiveOrders(1) != 8 || cfg.MaxActiveOrders(2) != 12 {
		t.Error("MaxActiveOrders should be 8 solo, 12 coop")
	}
}

func TestCatalogParams(t *testing.T) {
	p := DefaultGameConfig().CatalogParams()
	if p.CookTimeMeat != 5 || p.RewardBurger != 10 {
		t.Errorf("CatalogParams = %+v, expected stock values", p)
	}
}
