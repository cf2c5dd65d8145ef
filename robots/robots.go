package robots

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lpbeast/ecbtoys/combat"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	FullCharge = 100
	MoveCost   = 10
	SpeakCost  = 5
	CleanCost  = 15
	AttackCost = 20
)

type Kind string

const (
	Basic    Kind = "basic"
	Cleaning Kind = "cleaning"
	Battle   Kind = "battle"
)

var ErrUnknownKind = errors.New("unknown robot kind")

type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Position) point() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// Robot is the shared base of every robot kind: a name, a battery and a spot
// on the grid. The battery has no floor; each action guards its own cost.
type Robot struct {
	UUID     string
	name     string
	battery  int
	position Position
	odometer float64
	out      io.Writer
}

// Reading is a snapshot of what a robot's status line reports.
type Reading struct {
	Name     string
	Position Position
	Battery  int
}

func (r Reading) String() string {
	return fmt.Sprintf("🤖 %s | Position: %s | Battery: %d%%", r.Name, r.Position, r.Battery)
}

type Option func(*Robot)

func WithBattery(level int) Option {
	return func(r *Robot) {
		r.battery = level
	}
}

func WithOutput(w io.Writer) Option {
	return func(r *Robot) {
		if w != nil {
			r.out = w
		}
	}
}

func New(name string, opts ...Option) *Robot {
	r := &Robot{
		UUID:    uuid.New().String(),
		name:    name,
		battery: FullCharge,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Move only checks for a dead battery, so a robot with charge left but less
// than MoveCost still moves and ends up below zero.
func (r *Robot) Move(x, y int) combat.Outcome {
	if r.battery <= 0 {
		fmt.Fprintf(r.out, "%s has no battery left to move!\n", r.name)
		return combat.Refused
	}
	dest := Position{x, y}
	fmt.Fprintf(r.out, "%s is moving from %s to %s\n", r.name, r.position, dest)
	r.odometer += planar.Distance(r.position.point(), dest.point())
	r.position = dest
	r.battery -= MoveCost
	return combat.Performed
}

func (r *Robot) Recharge() combat.Outcome {
	fmt.Fprintf(r.out, "%s is recharging...\n", r.name)
	r.battery = FullCharge
	fmt.Fprintf(r.out, "%s's battery is now full!\n", r.name)
	return combat.Performed
}

func (r *Robot) Speak(message string) combat.Outcome {
	if r.battery <= 0 {
		fmt.Fprintf(r.out, "%s has no battery to speak!\n", r.name)
		return combat.Refused
	}
	fmt.Fprintf(r.out, "%s says: '%s'\n", r.name, message)
	r.battery -= SpeakCost
	return combat.Performed
}

func (r *Robot) Reading() Reading {
	return Reading{
		Name:     r.name,
		Position: r.position,
		Battery:  r.battery,
	}
}

func (r *Robot) Status() string {
	return r.Reading().String()
}

// Odometer is the straight-line distance covered by every successful move.
func (r *Robot) Odometer() float64 {
	return r.odometer
}

func (r *Robot) GetName() string {
	return r.name
}

func (r *Robot) GetBattery() int {
	return r.battery
}

func (r *Robot) GetPosition() Position {
	return r.position
}
