package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lpbeast/ecbtoys/chara"
	"github.com/lpbeast/ecbtoys/combat"
	"github.com/lpbeast/ecbtoys/robots"
	"github.com/lpbeast/ecbtoys/roster"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownActor   = errors.New("unknown actor")
	ErrWrongActor     = errors.New("actor cannot do that")
	ErrBadArguments   = errors.New("bad arguments")
)

type ParsedCommand struct {
	Command   Token
	Arguments []Token
	raw       string
}

func ParseCommand(in string) (*ParsedCommand, error) {
	words := strings.Fields(in)
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}
	newCmd := lookupCommand(words[0])
	newArgs := []Token{}
	for _, v := range words[1:] {
		newArgs = append(newArgs, lookupIdent(v))
	}
	return &ParsedCommand{newCmd, newArgs, in}, nil
}

// Text is the rest of the line after the command word and the first n
// arguments, with its inner spacing intact.
func (pc *ParsedCommand) Text(n int) string {
	s := strings.TrimLeftFunc(pc.raw, unicode.IsSpace)
	for i := 0; i <= n; i++ {
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		s = strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// RunCommand carries out pc. A refused action is not an error; err is only
// set when the line itself can't be carried out, and then the outcome means
// nothing.
func RunCommand(pc *ParsedCommand, rs *roster.Roster, out io.Writer) (combat.Outcome, error) {
	switch pc.Command.Type {
	case ECHO:
		fmt.Fprintln(out, pc.Text(0))
		return combat.Performed, nil
	case STATUS:
		return RunStatusCommand(pc, rs, out)
	case ATTACK:
		return RunAttackCommand(pc, rs)
	case REPLENISH:
		return RunReplenishCommand(pc, rs)
	case MOVE:
		return RunMoveCommand(pc, rs)
	case RECHARGE:
		return RunRechargeCommand(pc, rs)
	case SPEAK:
		return RunSpeakCommand(pc, rs)
	case CLEAN:
		return RunCleanCommand(pc, rs)
	default:
		return combat.Refused, fmt.Errorf("%w: %q", ErrUnknownCommand, pc.Command.Literal)
	}
}

// findActor looks the first argument up across the whole roster.
// Exactly one of the returned entities is non-nil when err is nil.
func findActor(pc *ParsedCommand, rs *roster.Roster) (*chara.Player, robots.Unit, error) {
	if len(pc.Arguments) == 0 {
		return nil, nil, fmt.Errorf("%w: %s who?", ErrBadArguments, strings.ToLower(pc.Command.Literal))
	}
	p, u, err := rs.Find(pc.Arguments[0].Literal)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnknownActor, err)
	}
	return p, u, nil
}

func numberArg(tok Token) (int, error) {
	if tok.Type != NUMBER {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadArguments, tok.Literal)
	}
	n, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	return n, nil
}

func findRobot(pc *ParsedCommand, rs *roster.Roster) (robots.Unit, error) {
	p, u, err := findActor(pc, rs)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return nil, fmt.Errorf("%w: %s is not a robot", ErrWrongActor, p.GetName())
	}
	return u, nil
}

func RunStatusCommand(pc *ParsedCommand, rs *roster.Roster, out io.Writer) (combat.Outcome, error) {
	p, u, err := findActor(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	if p != nil {
		fmt.Fprintln(out, p.Status())
	} else {
		fmt.Fprintln(out, u.Core().Status())
	}
	return combat.Performed, nil
}

// RunAttackCommand handles both kinds of attack. A player hits another
// player by name; a battle robot attacks whatever the rest of the line says.
func RunAttackCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	p, u, err := findActor(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	if p != nil {
		if len(pc.Arguments) != 2 {
			return combat.Refused, fmt.Errorf("%w: %s attacks who?", ErrBadArguments, p.GetName())
		}
		target, err := rs.FindPlayer(pc.Arguments[1].Literal)
		if err != nil {
			return combat.Refused, fmt.Errorf("%w: %w", ErrUnknownActor, err)
		}
		return p.Attack(target), nil
	}
	b, ok := u.(*robots.BattleRobot)
	if !ok {
		return combat.Refused, fmt.Errorf("%w: %s has no weapons", ErrWrongActor, u.Core().GetName())
	}
	label := pc.Text(1)
	if label == "" {
		return combat.Refused, fmt.Errorf("%w: %s attacks what?", ErrBadArguments, b.GetName())
	}
	return b.Attack(label), nil
}

func RunReplenishCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	p, u, err := findActor(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	if p == nil {
		return combat.Refused, fmt.Errorf("%w: %s has no stamina", ErrWrongActor, u.Core().GetName())
	}
	return p.Replenish(), nil
}

func RunMoveCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	u, err := findRobot(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	args := pc.Arguments[1:]
	if len(args) != 2 {
		return combat.Refused, fmt.Errorf("%w: move needs x and y", ErrBadArguments)
	}
	x, err := numberArg(args[0])
	if err != nil {
		return combat.Refused, err
	}
	y, err := numberArg(args[1])
	if err != nil {
		return combat.Refused, err
	}
	return u.Core().Move(x, y), nil
}

func RunRechargeCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	u, err := findRobot(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	return u.Core().Recharge(), nil
}

func RunSpeakCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	u, err := findRobot(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	return u.Core().Speak(pc.Text(1)), nil
}

func RunCleanCommand(pc *ParsedCommand, rs *roster.Roster) (combat.Outcome, error) {
	u, err := findRobot(pc, rs)
	if err != nil {
		return combat.Refused, err
	}
	c, ok := u.(*robots.CleaningRobot)
	if !ok {
		return combat.Refused, fmt.Errorf("%w: %s can't clean", ErrWrongActor, u.Core().GetName())
	}
	return c.Clean(), nil
}
