package chara

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lpbeast/ecbtoys/combat"
)

const (
	DefaultHealth   = 100
	StartingStamina = 100
	BasePower       = 10
	AttackCost      = 10
	ReplenishAmount = 10
)

// Player is a named combatant. Health and stamina have no floor or ceiling;
// only the stamina check in Attack guards anything.
type Player struct {
	UUID    string
	name    string
	health  int
	stamina int
	power   int
	out     io.Writer
}

// Stats is a point-in-time copy of a player's numbers.
type Stats struct {
	Name    string
	Health  int
	Stamina int
	Power   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%s's current stats: Health=%d, Stamina=%d, Power=%d", s.Name, s.Health, s.Stamina, s.Power)
}

type Option func(*Player)

// WithHealth sets the starting health. Zero and negative values are kept as given.
func WithHealth(hp int) Option {
	return func(p *Player) {
		p.health = hp
	}
}

// WithOutput sets where the player reports its actions. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Player) {
		if w != nil {
			p.out = w
		}
	}
}

func New(name string, opts ...Option) *Player {
	p := &Player{
		UUID:    uuid.New().String(),
		name:    name,
		health:  DefaultHealth,
		stamina: StartingStamina,
		power:   BasePower,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attack spends stamina to deal the player's power as damage to target.
// With less stamina than an attack costs, nothing changes on either side.
func (p *Player) Attack(target combat.Combatant) combat.Outcome {
	if p.stamina < AttackCost {
		fmt.Fprintf(p.out, "%s needs to replenish stamina!\n", p.name)
		return combat.Refused
	}
	p.stamina -= AttackCost
	target.ReceiveDamage(p.power)
	fmt.Fprintf(p.out, "%s attacks %s\n", p.name, target.GetName())
	fmt.Fprintln(p.out, p.Status())
	fmt.Fprintln(p.out, target.Status())
	return combat.Performed
}

func (p *Player) Replenish() combat.Outcome {
	p.stamina += ReplenishAmount
	fmt.Fprintf(p.out, "%s stamina + %d\n", p.name, ReplenishAmount)
	fmt.Fprintln(p.out, p.Status())
	return combat.Performed
}

func (p *Player) Stats() Stats {
	return Stats{
		Name:    p.name,
		Health:  p.health,
		Stamina: p.stamina,
		Power:   p.power,
	}
}

func (p *Player) Status() string {
	return p.Stats().String()
}

func (p *Player) ReceiveDamage(dmg int) {
	p.health -= dmg
}

func (p *Player) GetName() string {
	return p.name
}

func (p *Player) GetHP() int {
	return p.health
}

func (p *Player) GetStamina() int {
	return p.stamina
}

func (p *Player) GetPower() int {
	return p.power
}
