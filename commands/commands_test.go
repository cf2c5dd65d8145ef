package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lpbeast/ecbtoys/combat"
	"github.com/lpbeast/ecbtoys/roster"
)

func newRoster(t *testing.T, out *bytes.Buffer) *roster.Roster {
	t.Helper()
	battery := 12
	doc := roster.Default()
	doc.Robots = append(doc.Robots,
		roster.RobotTemplate{Name: "Weakling", Kind: "battle", Battery: &battery},
		roster.RobotTemplate{Name: "Bolt"},
	)
	rs, err := roster.Build(doc, out, nil)
	if err != nil {
		t.Fatalf("build roster: %v", err)
	}
	return rs
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want TokenType
		args []Token
	}{
		{"attack Hero Villain", ATTACK, []Token{{IDENT, "Hero"}, {IDENT, "Villain"}}},
		{"ATTACK hero villain", ATTACK, []Token{{IDENT, "hero"}, {IDENT, "villain"}}},
		{"mo bot 2 -3", MOVE, []Token{{IDENT, "bot"}, {NUMBER, "2"}, {NUMBER, "-3"}}},
		{"go bot 1 1", MOVE, []Token{{IDENT, "bot"}, {NUMBER, "1"}, {NUMBER, "1"}}},
		{"say bot hi", SPEAK, []Token{{IDENT, "bot"}, {IDENT, "hi"}}},
		{"st Hero", STATUS, []Token{{IDENT, "Hero"}}},
		{"rep Hero", REPLENISH, []Token{{IDENT, "Hero"}}},
		{"rec bot", RECHARGE, []Token{{IDENT, "bot"}}},
		{"dance Hero", ILLEGAL, []Token{{IDENT, "Hero"}}},
	}
	for _, tc := range tests {
		pc, err := ParseCommand(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if pc.Command.Type != tc.want {
			t.Fatalf("parse %q: expected %s, got %s", tc.in, tc.want, pc.Command.Type)
		}
		if len(pc.Arguments) != len(tc.args) {
			t.Fatalf("parse %q: expected %d arguments, got %d", tc.in, len(tc.args), len(pc.Arguments))
		}
		for i, a := range tc.args {
			if pc.Arguments[i] != a {
				t.Fatalf("parse %q: argument %d: expected %v, got %v", tc.in, i, a, pc.Arguments[i])
			}
		}
	}

	for _, in := range []string{"", "   \t"} {
		if _, err := ParseCommand(in); err == nil {
			t.Fatalf("parse %q: expected error", in)
		}
	}
}

func TestText(t *testing.T) {
	pc, _ := ParseCommand("  speak   Bolt  hello   there, world  ")
	if got := pc.Text(0); got != "Bolt  hello   there, world" {
		t.Fatalf("unexpected Text(0) %q", got)
	}
	if got := pc.Text(1); got != "hello   there, world" {
		t.Fatalf("unexpected Text(1) %q", got)
	}
	if got := pc.Text(5); got != "" {
		t.Fatalf("unexpected Text(5) %q", got)
	}
}

func run(t *testing.T, rs *roster.Roster, out *bytes.Buffer, line string) (combat.Outcome, error) {
	t.Helper()
	pc, err := ParseCommand(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return RunCommand(pc, rs, out)
}

func TestRunCommandOutput(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"echo", "\n"},
		{"echo ------", "------\n"},
		{"status Hero", "Hero's current stats: Health=100, Stamina=100, Power=10\n"},
		{"status clean", "🤖 Clean-o-tron | Position: (0, 0) | Battery: 100%\n"},
		{"attack Hero Villain", "Hero attacks Villain\n" +
			"Hero's current stats: Health=100, Stamina=90, Power=10\n" +
			"Villain's current stats: Health=110, Stamina=100, Power=10\n"},
		{"replenish Hero", "Hero stamina + 10\nHero's current stats: Health=100, Stamina=100, Power=10\n"},
		{"move Bolt 2 3", "Bolt is moving from (0, 0) to (2, 3)\n"},
		{"speak Bolt hello there", "Bolt says: 'hello there'\n"},
		{"recharge Bolt", "Bolt is recharging...\nBolt's battery is now full!\n"},
		{"clean Clean-o-tron", "Clean-o-tron is cleaning the area at (0, 0) 🧹\n"},
		{"attack WarMachine Intruder Bot", "WarMachine attacks Intruder Bot! 💥\n"},
	}

	var out bytes.Buffer
	rs := newRoster(t, &out)
	for _, tc := range tests {
		out.Reset()
		outcome, err := run(t, rs, &out, tc.line)
		if err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if outcome != combat.Performed {
			t.Fatalf("%q: expected performed, got %s", tc.line, outcome)
		}
		if out.String() != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.line, tc.want, out.String())
		}
	}
}

func TestRunCommandRefused(t *testing.T) {
	var out bytes.Buffer
	rs := newRoster(t, &out)

	outcome, err := run(t, rs, &out, "attack Weakling Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != combat.Refused {
		t.Fatalf("expected refused, got %s", outcome)
	}
	if out.String() != "Weakling is too low on battery to attack!\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	u, _ := rs.FindRobot("Weakling")
	if u.Core().GetBattery() != 12 {
		t.Fatalf("expected battery to stay 12, got %d", u.Core().GetBattery())
	}
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"dance Hero", ErrUnknownCommand},
		{"status", ErrBadArguments},
		{"status Nobody", ErrUnknownActor},
		{"attack Hero", ErrBadArguments},
		{"attack Hero Nobody", ErrUnknownActor},
		{"attack Hero WarMachine", ErrUnknownActor},
		{"attack Bolt Hero", ErrWrongActor},
		{"attack WarMachine", ErrBadArguments},
		{"replenish Bolt", ErrWrongActor},
		{"move Hero 1 1", ErrWrongActor},
		{"move Bolt 1", ErrBadArguments},
		{"move Bolt one two", ErrBadArguments},
		{"recharge Hero", ErrWrongActor},
		{"speak Villain hi", ErrWrongActor},
		{"clean WarMachine", ErrWrongActor},
		{"clean Bolt", ErrWrongActor},
	}

	var out bytes.Buffer
	rs := newRoster(t, &out)
	for _, tc := range tests {
		out.Reset()
		_, err := run(t, rs, &out, tc.line)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.line, tc.want, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%q: expected no output, got %q", tc.line, out.String())
		}
	}
}

func TestExactRobotNameBeatsPlayerPrefix(t *testing.T) {
	var out bytes.Buffer
	doc := &roster.Document{
		Players: []roster.PlayerTemplate{{Name: "Robert"}},
		Robots:  []roster.RobotTemplate{{Name: "Rob"}},
	}
	rs, err := roster.Build(doc, &out, nil)
	if err != nil {
		t.Fatalf("build roster: %v", err)
	}

	outcome, err := run(t, rs, &out, "move Rob 1 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != combat.Performed {
		t.Fatalf("expected performed, got %s", outcome)
	}
	if out.String() != "Rob is moving from (0, 0) to (1, 1)\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if _, err := run(t, rs, &out, "replenish rob"); !errors.Is(err, ErrWrongActor) {
		t.Fatalf("expected ErrWrongActor, got %v", err)
	}
	out.Reset()
	if _, err := run(t, rs, &out, "replenish robe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Robert stamina + 10\nRobert's current stats: Health=100, Stamina=110, Power=10\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestMoveArguments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"move Bolt -4 7", "Bolt is moving from (0, 0) to (-4, 7)\n"},
		{"move Bolt 0 0", "Bolt is moving from (-4, 7) to (0, 0)\n"},
	}
	var out bytes.Buffer
	rs := newRoster(t, &out)
	for _, tc := range tests {
		out.Reset()
		if _, err := run(t, rs, &out, tc.line); err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if out.String() != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.line, tc.want, out.String())
		}
	}

	for _, line := range []string{"move Bolt 1 x", "move Bolt 99999999999999999999 1", "move Bolt 1 2 3"} {
		out.Reset()
		if _, err := run(t, rs, &out, line); !errors.Is(err, ErrBadArguments) {
			t.Fatalf("%q: expected ErrBadArguments, got %v", line, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%q: expected no output, got %q", line, out.String())
		}
	}
}
