package catalog

// Recipe maps a dish kind to its required ingredient kinds and reward value.
type Recipe struct {
	Dish        ItemKind
	Name        string
	Ingredients []ItemKind
	Reward      int
}

// CookRule describes a timed transform a cooking station performs.
type CookRule struct {
	Input    ItemKind
	Output   ItemKind
	Duration float64 // Cook time in seconds
}

// Params carries the configurable values a Catalog is built from.
type Params struct {
	CookTimeMeat    float64
	CookTimeSausage float64
	CookTimePasta   float64
	RewardBurger    int
	RewardHotdog    int
	RewardPasta     int
}

// DefaultParams returns the stock tuning values.
func DefaultParams() Params {
	return Params{
		CookTimeMeat:    5,
		CookTimeSausage: 4,
		CookTimePasta:   7,
		RewardBurger:    10,
		RewardHotdog:    8,
		RewardPasta:     6,
	}
}

// Catalog is the full recipe and cook-rule table for a round.
// Recipe order is fixed: assembly tie-breaks resolve to the first
// satisfiable recipe in this order.
type Catalog struct {
	Recipes     []Recipe
	StoveRules  []CookRule
	BoilerRules []CookRule
}

// New builds a catalog from tuning parameters.
func New(p Params) Catalog {
	return Catalog{
		Recipes: []Recipe{
			{
				Dish:        KindBurger,
				Name:        "Burger",
				Ingredients: []ItemKind{KindBread, KindCookedMeat},
				Reward:      p.RewardBurger,
			},
			{
				Dish:        KindHotdog,
				Name:        "Hotdog",
				Ingredients: []ItemKind{KindBread, KindCookedSausage},
				Reward:      p.RewardHotdog,
			},
			{
				Dish:        KindPastaDish,
				Name:        "Pasta",
				Ingredients: []ItemKind{KindBoiledPasta},
				Reward:      p.RewardPasta,
			},
		},
		StoveRules: []CookRule{
			{Input: KindMeat, Output: KindCookedMeat, Duration: p.CookTimeMeat},
			{Input: KindSausage, Output: KindCookedSausage, Duration: p.CookTimeSausage},
		},
		BoilerRules: []CookRule{
			{Input: KindPasta, Output: KindBoiledPasta, Duration: p.CookTimePasta},
		},
	}
}

// Default returns a catalog built from the stock tuning values.
func Default() Catalog {
	return New(DefaultParams())
}

// RecipeFor returns the recipe producing the given dish kind.
func (c Catalog) RecipeFor(dish ItemKind) (Recipe, bool) {
	for _, r := range c.Recipes {
		if r.Dish == dish {
			return r, true
		}
	}
	return Recipe{}, false
}

// Dishes returns all dish kinds in catalog order.
func (c Catalog) Dishes() []ItemKind {
	dishes := make([]ItemKind, len(c.Recipes))
	for i, r := range c.Recipes {
		dishes[i] = r.Dish
	}
	return dishes
}

// Reward returns the payout for the given dish kind, 0 if unknown.
func (c Catalog) Reward(dish ItemKind) int {
	if r, ok := c.RecipeFor(dish); ok {
		return r.Reward
	}
	return 0
}

// RuleFor returns the cook rule matching the input kind, if any.
func RuleFor(rules []CookRule, input ItemKind) (CookRule, bool) {
	for _, r := range rules {
		if r.Input == input {
			return r, true
		}
	}
	return CookRule{}, false
}
