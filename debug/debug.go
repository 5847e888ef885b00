package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Replay    bool
	Aggregate bool
	Sim       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("AOC_DEBUG_PARSE")
	d.Replay = boolEnv("AOC_DEBUG_REPLAY")
	d.Aggregate = boolEnv("AOC_DEBUG_AGGREGATE")
	d.Sim = boolEnv("AOC_DEBUG_SIM")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Replay() bool {
	return d.Replay
}
func Aggregate() bool {
	return d.Aggregate
}
func Sim() bool {
	return d.Sim
}
