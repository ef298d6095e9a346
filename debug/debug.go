package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve   bool
	Broadcast bool
	Descend   bool
	Decode    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("PATHY_DEBUG_RESOLVE")
	d.Broadcast = boolEnv("PATHY_DEBUG_BROADCAST")
	d.Descend = boolEnv("PATHY_DEBUG_DESCEND")
	d.Decode = boolEnv("PATHY_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Broadcast() bool {
	return d.Broadcast
}
func Descend() bool {
	return d.Descend
}
func Decode() bool {
	return d.Decode
}
