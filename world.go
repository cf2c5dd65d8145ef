package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lpbeast/ecbtoys/combat"
	"github.com/lpbeast/ecbtoys/commands"
	"github.com/lpbeast/ecbtoys/roster"
)

// Report counts how the lines of a run went.
type Report struct {
	Performed int
	Refused   int
	Failed    int
}

// World runs queued command lines one at a time, in the order they were
// queued, against a single roster.
type World struct {
	Roster *roster.Roster
	Out    io.Writer
	Logger *log.Logger

	incomingCmds []string
	report       Report
}

func NewWorld(rs *roster.Roster, out io.Writer, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &World{
		Roster: rs,
		Out:    out,
		Logger: logger,
	}
}

func (w *World) Enqueue(lines ...string) {
	w.incomingCmds = append(w.incomingCmds, lines...)
}

func (w *World) Pending() int {
	return len(w.incomingCmds)
}

// Tick processes the first queued line. It reports false once the queue is
// empty.
func (w *World) Tick() bool {
	if len(w.incomingCmds) == 0 {
		return false
	}
	line := w.incomingCmds[0]
	w.incomingCmds = w.incomingCmds[1:]

	pc, err := commands.ParseCommand(line)
	if err != nil {
		w.Logger.Println(err.Error())
		w.report.Failed++
		return true
	}
	outcome, err := commands.RunCommand(pc, w.Roster, w.Out)
	if err != nil {
		w.Logger.Printf("%q: %s\n", line, err)
		w.report.Failed++
		return true
	}
	switch outcome {
	case combat.Performed:
		w.report.Performed++
	case combat.Refused:
		w.report.Refused++
	}
	return true
}

// Run drains the queue and returns the totals for everything processed so far.
func (w *World) Run() Report {
	for w.Tick() {
	}
	return w.report
}

// LoadScript reads one command per line, skipping blank lines and # comments.
func LoadScript(r io.Reader) ([]string, error) {
	lines := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}
