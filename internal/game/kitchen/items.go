// Package kitchen implements the cooking-simulation game: station state
// machines, the order lifecycle, customer movement, player interaction
// resolution, and round scoring. The package contains pure logic with no
// external dependencies (especially no Bubble Tea); the platform handles
// input mapping, timing, and terminal rendering.
package kitchen

import "github.com/vovakirdan/times-kitchen/internal/catalog"

// ItemStack is a single item instance in the kitchen. Immutable once
// created; stations create them on dispense/cook/assemble and they are
// destroyed on consumption (cooked, combined, served, or discarded).
type ItemStack struct {
	Kind catalog.ItemKind
}

// NewItem creates an item of the given kind.
func NewItem(kind catalog.ItemKind) ItemStack {
	return ItemStack{Kind: kind}
}

// DisplayName returns the human-readable item name.
func (i ItemStack) DisplayName() string {
	return i.Kind.DisplayName()
}

// Result is the outcome of a player-triggered operation. Failures are
// expected gameplay outcomes, not errors: every failure leaves all
// entities unchanged and carries a user-facing message.
type Result struct {
	OK      bool
	Message string
}

func ok(msg string) Result {
	return Result{OK: true, Message: msg}
}

func fail(msg string) Result {
	return Result{OK: false, Message: msg}
}
