package dbg

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns arbitrary pointers into stable, readable names for debug output.
// Pointer strings are useless for telling two dimensions apart at a glance;
// "brave-mole" is not. Names are handed out lazily and never released, which
// is fine for a debug aid. They are also nondeterministic between runs, as a
// reminder that a name only identifies an object within one run.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := petname.Generate(2, "-")
	memo[obj] = name
	return name
}
