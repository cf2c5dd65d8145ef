package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lpbeast/ecbtoys/chara"
	"github.com/lpbeast/ecbtoys/robots"
	"golang.org/x/text/cases"
)

type PlayerTemplate struct {
	Name   string `json:"Name"`
	Health *int   `json:"Health,omitempty"`
}

type RobotTemplate struct {
	Name    string      `json:"Name"`
	Kind    robots.Kind `json:"Kind"`
	Battery *int        `json:"Battery,omitempty"`
}

// Document is the on-disk description of who takes part in a run.
type Document struct {
	Players []PlayerTemplate `json:"Players"`
	Robots  []RobotTemplate  `json:"Robots"`
}

// Roster holds the live entities of a run. Names are unique across players
// and robots, ignoring case.
type Roster struct {
	players map[string]*chara.Player
	robots  map[string]robots.Unit
	// names is the folded name of every entity in load order, so prefix
	// lookups always resolve the same way
	names []string
	fold  cases.Caser
}

func intPtr(n int) *int {
	return &n
}

// Default is the cast of the two original demonstrations.
func Default() *Document {
	return &Document{
		Players: []PlayerTemplate{
			{Name: "Hero"},
			{Name: "Villain", Health: intPtr(120)},
		},
		Robots: []RobotTemplate{
			{Name: "Clean-o-tron", Kind: robots.Cleaning},
			{Name: "WarMachine", Kind: robots.Battle},
		},
	}
}

func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}
	return doc, nil
}

func LoadFile(fname string) (*Document, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to open roster file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Build creates every entity in doc, all reporting to out. logger may be nil.
func Build(doc *Document, out io.Writer, logger *log.Logger) (*Roster, error) {
	rs := &Roster{
		players: make(map[string]*chara.Player),
		robots:  make(map[string]robots.Unit),
		fold:    cases.Fold(),
	}

	for _, v := range doc.Players {
		key, err := rs.claim(v.Name)
		if err != nil {
			return nil, err
		}
		opts := []chara.Option{chara.WithOutput(out)}
		if v.Health != nil {
			opts = append(opts, chara.WithHealth(*v.Health))
		}
		p := chara.New(v.Name, opts...)
		rs.players[key] = p
		if logger != nil {
			logger.Printf("loaded player: %s: %s\n", p.GetName(), p.UUID)
		}
	}

	for _, v := range doc.Robots {
		key, err := rs.claim(v.Name)
		if err != nil {
			return nil, err
		}
		opts := []robots.Option{robots.WithOutput(out)}
		if v.Battery != nil {
			opts = append(opts, robots.WithBattery(*v.Battery))
		}
		u, err := robots.Build(v.Kind, v.Name, opts...)
		if err != nil {
			return nil, fmt.Errorf("robot %q: %w", v.Name, err)
		}
		rs.robots[key] = u
		if logger != nil {
			logger.Printf("loaded %s robot: %s: %s\n", robots.KindOf(u), u.Core().GetName(), u.Core().UUID)
		}
	}

	return rs, nil
}

func (rs *Roster) claim(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty name in roster")
	}
	key := rs.fold.String(name)
	for _, v := range rs.names {
		if v == key {
			return "", fmt.Errorf("duplicate name in roster: %q", name)
		}
	}
	rs.names = append(rs.names, key)
	return key, nil
}

// resolve finds the folded name stub refers to: an exact match if there is
// one, otherwise the first name in load order that starts with it.
func (rs *Roster) resolve(stub string, has func(string) bool) (string, bool) {
	key := rs.fold.String(stub)
	if key == "" {
		return "", false
	}
	if has(key) {
		return key, true
	}
	for _, v := range rs.names {
		if strings.HasPrefix(v, key) && has(v) {
			return v, true
		}
	}
	return "", false
}

func (rs *Roster) FindPlayer(stub string) (*chara.Player, error) {
	key, ok := rs.resolve(stub, func(k string) bool {
		_, found := rs.players[k]
		return found
	})
	if !ok {
		return nil, fmt.Errorf("not found: %q", stub)
	}
	return rs.players[key], nil
}

func (rs *Roster) FindRobot(stub string) (robots.Unit, error) {
	key, ok := rs.resolve(stub, func(k string) bool {
		_, found := rs.robots[k]
		return found
	})
	if !ok {
		return nil, fmt.Errorf("not found: %q", stub)
	}
	return rs.robots[key], nil
}

// Find looks stub up among players and robots together, so an exact name of
// either kind wins over a prefix of the other. Exactly one of the returned
// entities is non-nil when err is nil.
func (rs *Roster) Find(stub string) (*chara.Player, robots.Unit, error) {
	key, ok := rs.resolve(stub, func(k string) bool {
		_, isPlayer := rs.players[k]
		_, isRobot := rs.robots[k]
		return isPlayer || isRobot
	})
	if !ok {
		return nil, nil, fmt.Errorf("not found: %q", stub)
	}
	if p, ok := rs.players[key]; ok {
		return p, nil, nil
	}
	return nil, rs.robots[key], nil
}

// Names lists every entity's display name in load order.
func (rs *Roster) Names() []string {
	nameList := []string{}
	for _, k := range rs.names {
		if p, ok := rs.players[k]; ok {
			nameList = append(nameList, p.GetName())
		} else if u, ok := rs.robots[k]; ok {
			nameList = append(nameList, u.Core().GetName())
		}
	}
	return nameList
}
