package main

import "github.com/lpbeast/ecbtoys/config"

// playerDemo is the Hero and Villain duel.
var playerDemo = []string{
	"echo Initial status:",
	"status Hero",
	"status Villain",
	"echo",

	"echo Player 1 attacks Player 2:",
	"attack Hero Villain",
	"echo",

	"echo Player 1 replenishes stamina:",
	"replenish Hero",
	"echo",

	"echo Multiple attacks test:",
	"attack Hero Villain",
	"echo",
	"attack Hero Villain",
	"echo",
	"attack Hero Villain",
	"echo",

	// still 70 stamina left, so this one lands too
	"echo Try to attack with low stamina:",
	"attack Hero Villain",
	"echo",

	"echo Final status:",
	"status Hero",
	"status Villain",
}

// robotDemo puts one robot of each specialised kind through its paces.
var robotDemo = []string{
	"status Clean-o-tron",
	"move Clean-o-tron 2 3",
	"clean Clean-o-tron",
	"status Clean-o-tron",

	"echo ------",

	"status WarMachine",
	"move WarMachine 5 8",
	"attack WarMachine Intruder Bot",
	"status WarMachine",
}

func demoScript(name string) []string {
	switch name {
	case config.DemoPlayer:
		return playerDemo
	case config.DemoRobot:
		return robotDemo
	default:
		script := append([]string{}, playerDemo...)
		script = append(script, "echo")
		return append(script, robotDemo...)
	}
}
