// Package catalog provides the static item and recipe data for the kitchen:
// ingredient kinds, dish recipes, cook rules, and rewards. It contains no
// external dependencies so the simulation stays pure and testable.
package catalog

// ItemKind identifies a kind of item that can exist in the kitchen.
type ItemKind int

const (
	KindNone ItemKind = iota

	// Raw ingredients
	KindBread
	KindMeat
	KindSausage
	KindPasta

	// Cooked ingredients
	KindCookedMeat
	KindCookedSausage
	KindBoiledPasta

	// Finished dishes
	KindBurger
	KindHotdog
	KindPastaDish

	// Tools
	KindMop
)

// String returns the stable identifier for the kind.
func (k ItemKind) String() string {
	switch k {
	case KindBread:
		return "bread"
	case KindMeat:
		return "meat"
	case KindSausage:
		return "sausage"
	case KindPasta:
		return "pasta"
	case KindCookedMeat:
		return "cooked_meat"
	case KindCookedSausage:
		return "cooked_sausage"
	case KindBoiledPasta:
		return "boiled_pasta"
	case KindBurger:
		return "burger"
	case KindHotdog:
		return "hotdog"
	case KindPastaDish:
		return "pasta_dish"
	case KindMop:
		return "mop"
	default:
		return "none"
	}
}

// DisplayName returns the human-readable name shown in messages and the HUD.
func (k ItemKind) DisplayName() string {
	switch k {
	case KindBread:
		return "Bread"
	case KindMeat:
		return "Raw Meat"
	case KindSausage:
		return "Raw Sausage"
	case KindPasta:
		return "Raw Pasta"
	case KindCookedMeat:
		return "Cooked Meat"
	case KindCookedSausage:
		return "Cooked Sausage"
	case KindBoiledPasta:
		return "Boiled Pasta"
	case KindBurger:
		return "Burger"
	case KindHotdog:
		return "Hotdog"
	case KindPastaDish:
		return "Pasta"
	case KindMop:
		return "Mop"
	default:
		return "Unknown"
	}
}

// IsRawIngredient reports whether the kind is an uncooked ingredient.
func (k ItemKind) IsRawIngredient() bool {
	switch k {
	case KindBread, KindMeat, KindSausage, KindPasta:
		return true
	}
	return false
}

// IsCookedIngredient reports whether the kind is a cooked intermediate.
func (k ItemKind) IsCookedIngredient() bool {
	switch k {
	case KindCookedMeat, KindCookedSausage, KindBoiledPasta:
		return true
	}
	return false
}

// IsDish reports whether the kind is a finished, deliverable dish.
func (k ItemKind) IsDish() bool {
	switch k {
	case KindBurger, KindHotdog, KindPastaDish:
		return true
	}
	return false
}

// IsTool reports whether the kind is a tool rather than food.
func (k ItemKind) IsTool() bool {
	return k == KindMop
}
