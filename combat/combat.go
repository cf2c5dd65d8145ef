package combat

// This exists so that players can attack anything that can take a hit, and
// so that every guarded action can report whether it went through.

type Combatant interface {
	GetName() string
	ReceiveDamage(dmg int)
	Status() string
}

// Outcome is what a guarded action did. A refused action changed nothing.
type Outcome int

const (
	Performed Outcome = iota
	Refused
)

func (o Outcome) String() string {
	switch o {
	case Performed:
		return "performed"
	case Refused:
		return "refused"
	default:
		return "unknown"
	}
}
