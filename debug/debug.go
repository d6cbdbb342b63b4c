package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match  bool
	Update bool
	Keys   bool
	Op     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("MONDOC_DEBUG_MATCH")
	d.Update = boolEnv("MONDOC_DEBUG_UPDATE")
	d.Keys = boolEnv("MONDOC_DEBUG_KEYS")
	d.Op = boolEnv("MONDOC_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Update() bool {
	return d.Update
}
func Keys() bool {
	return d.Keys
}
func Op() bool {
	return d.Op
}
