package robots

import (
	"fmt"

	"github.com/lpbeast/ecbtoys/combat"
)

// Unit is any kind of robot. The variants embed *Robot, so Core is promoted
// and every base action is available on them unchanged.
type Unit interface {
	Core() *Robot
}

func (r *Robot) Core() *Robot {
	return r
}

type CleaningRobot struct {
	*Robot
}

func NewCleaningRobot(name string, opts ...Option) *CleaningRobot {
	return &CleaningRobot{New(name, opts...)}
}

func (c *CleaningRobot) Clean() combat.Outcome {
	if c.battery < CleanCost {
		fmt.Fprintf(c.out, "%s is too low on battery to clean!\n", c.name)
		return combat.Refused
	}
	fmt.Fprintf(c.out, "%s is cleaning the area at %s 🧹\n", c.name, c.position)
	c.battery -= CleanCost
	return combat.Performed
}

type BattleRobot struct {
	*Robot
}

func NewBattleRobot(name string, opts ...Option) *BattleRobot {
	return &BattleRobot{New(name, opts...)}
}

// Attack only names its target. Unlike a player's attack, nothing on the
// other end takes damage.
func (b *BattleRobot) Attack(target string) combat.Outcome {
	if b.battery < AttackCost {
		fmt.Fprintf(b.out, "%s is too low on battery to attack!\n", b.name)
		return combat.Refused
	}
	fmt.Fprintf(b.out, "%s attacks %s! 💥\n", b.name, target)
	b.battery -= AttackCost
	return combat.Performed
}

// Build makes a robot of the given kind. An empty kind means Basic.
func Build(kind Kind, name string, opts ...Option) (Unit, error) {
	switch kind {
	case Basic, "":
		return New(name, opts...), nil
	case Cleaning:
		return NewCleaningRobot(name, opts...), nil
	case Battle:
		return NewBattleRobot(name, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func KindOf(u Unit) Kind {
	switch u.(type) {
	case *CleaningRobot:
		return Cleaning
	case *BattleRobot:
		return Battle
	default:
		return Basic
	}
}
