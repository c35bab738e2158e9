package logic

// InventoryView is what rule evaluation reads from solver state: which
// items a world currently holds, and how many of each.
type InventoryView interface {
	Has(name string) bool
	Count(name string) int
}

// Context carries everything a rule needs at evaluation time.
type Context struct {
	Inv    InventoryView
	Damage *DamageTables
}

// Op selects a Rule node's behavior.
type Op uint8

const (
	OpTrue         Op = iota // no requirement
	OpNever                  // unsatisfiable
	OpAny                    // at least one child holds
	OpAll                    // every child holds
	OpNot                    // the single child fails
	OpAtLeast                // N or more children hold
	OpHas                    // at least N copies of Item held
	OpArmor                  // armor level N reachable
	OpPower                  // weapon power level N reachable
	OpGenerator              // generator level at least N
	OpDamage                 // some loadout meets Target
	OpWeaponDamage           // the front weapon Item alone meets Target
)

// Rule is one node of an access requirement. Trees are built once per
// world and evaluated many times against changing inventories.
type Rule struct {
	Op     Op
	Item   string
	N      int
	Target DPS
	Sub    []Rule
}

// Eval reports whether the requirement holds for ctx.
func (r Rule) Eval(ctx Context) bool {
	switch r.Op {
	case OpTrue:
		return true
	case OpNever:
		return false
	case OpAny:
		for _, sub := range r.Sub {
			if sub.Eval(ctx) {
				return true
			}
		}
		return false
	case OpAll:
		for _, sub := range r.Sub {
			if !sub.Eval(ctx) {
				return false
			}
		}
		return true
	case OpNot:
		return !r.Sub[0].Eval(ctx)
	case OpAtLeast:
		hits := 0
		for _, sub := range r.Sub {
			if sub.Eval(ctx) {
				hits++
				if hits >= r.N {
					return true
				}
			}
		}
		return false
	case OpHas:
		if r.N > 1 {
			return ctx.Inv.Count(r.Item) >= r.N
		}
		return ctx.Inv.Has(r.Item)
	case OpArmor:
		return ctx.Inv.Count("Armor Up") >= r.N-5
	case OpPower:
		return ctx.Inv.Count("Maximum Power Up") >= r.N-1
	case OpGenerator:
		return GeneratorLevel(ctx.Inv) >= r.N
	case OpDamage:
		return ctx.Damage.CanDealDamage(ctx.Inv, r.Target)
	case OpWeaponDamage:
		return ctx.Damage.CanDealDamageWith(ctx.Inv, r.Item, r.Target)
	default:
		return false
	}
}

// True returns a rule that always holds.
func True() Rule { return Rule{Op: OpTrue} }

// Never returns a rule that cannot hold. Build-time folds produce it
// for requirements already ruled out by the world's options.
func Never() Rule { return Rule{Op: OpNever} }

// When folds a build-time condition to a constant node. Option
// comparisons resolve through it, since a built world's options never
// change.
func When(cond bool) Rule {
	if cond {
		return True()
	}
	return Never()
}

// Any holds when at least one of rules does.
func Any(rules ...Rule) Rule { return Rule{Op: OpAny, Sub: rules} }

// All holds only when every one of rules does.
func All(rules ...Rule) Rule { return Rule{Op: OpAll, Sub: rules} }

// Not inverts rule. The sphere search expects inventory predicates to
// stay monotone, so negate only nodes that are constant for the built
// world.
func Not(rule Rule) Rule { return Rule{Op: OpNot, Sub: []Rule{rule}} }

// AtLeast holds when k or more of rules do.
func AtLeast(k int, rules ...Rule) Rule {
	if k <= 0 {
		return True()
	}
	if k > len(rules) {
		return Never()
	}
	return Rule{Op: OpAtLeast, N: k, Sub: rules}
}

// Has requires one copy of the named item.
func Has(item string) Rule { return Rule{Op: OpHas, Item: item, N: 1} }

// HasN requires at least n copies of the named item.
func HasN(item string, n int) Rule { return Rule{Op: OpHas, Item: item, N: n} }

// Armor requires reaching the given armor level. Every ship starts at
// armor 5, so demands at or below that fold away.
func Armor(level int) Rule {
	if level <= 5 {
		return True()
	}
	return Rule{Op: OpArmor, N: level}
}

// Power requires reaching the given weapon power level. Power starts
// at 1, so demands at or below that fold away.
func Power(level int) Rule {
	if level <= 1 {
		return True()
	}
	return Rule{Op: OpPower, N: level}
}

// Generator requires a generator of at least the given level.
func Generator(level int) Rule { return Rule{Op: OpGenerator, N: level} }

// Damage requires some buildable loadout to meet target. The target
// must already carry the logic difficulty margin from MakeDPS.
func Damage(target DPS) Rule { return Rule{Op: OpDamage, Target: target} }

// WeaponDamage requires the one named front weapon to meet target by
// itself. Boss weaknesses build on this.
func WeaponDamage(weapon string, target DPS) Rule {
	return Rule{Op: OpWeaponDamage, Item: weapon, Target: target}
}
