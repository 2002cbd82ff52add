// Package scripting provides a sandboxed GopherLua environment for optional
// flavor scripts. It has no dependency on game domain packages; callers pass
// plain strings in and out.
package scripting

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// script execution when the caller does not configure an override.
const DefaultInstructionLimit = 100_000

// countingContext is a context.Context that cancels itself after Done() has
// been called limit times. GopherLua's main loop calls Done() once per
// opcode, making this an exact instruction-count limit.
type countingContext struct {
	context.Context
	cancel    context.CancelFunc
	remaining *atomic.Int64
}

// Done returns the underlying cancellation channel. Each call decrements
// the remaining counter; when it reaches zero the cancel function fires,
// terminating the Lua VM on the next opcode boundary.
func (c *countingContext) Done() <-chan struct{} {
	if c.remaining.Add(-1) <= 0 {
		c.cancel()
	}
	return c.Context.Done()
}

// newCountingContext returns a context that cancels after limit calls to Done().
// Precondition: limit > 0.
func newCountingContext(limit int) context.Context {
	base, cancel := context.WithCancel(context.Background())
	rem := &atomic.Int64{}
	rem.Store(int64(limit))
	return &countingContext{
		Context:   base,
		cancel:    cancel,
		remaining: rem,
	}
}

// newSandboxedState creates a GopherLua LState with only the safe standard
// libraries loaded and the dangerous globals stripped.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	return L
}

// Flavor wraps one loaded flavor script. The script may define a global
// function intro(name) returning a flavor line for a monster display name.
// A mutex serializes VM access; LState is not safe for concurrent use.
type Flavor struct {
	mu    sync.Mutex
	state *lua.LState
	limit int
}

// LoadFlavor parses and runs path in a fresh sandboxed state. instLimit
// bounds the opcodes of the load and of every later call; 0 uses
// DefaultInstructionLimit.
//
// Postcondition: Returns a ready *Flavor or a non-nil error; on error no
// state is retained. The caller owns the Flavor and must Close it.
func LoadFlavor(path string, instLimit int) (*Flavor, error) {
	limit := instLimit
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}

	L := newSandboxedState()
	L.SetContext(newCountingContext(limit))
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading flavor script %q: %w", path, err)
	}

	return &Flavor{state: L, limit: limit}, nil
}

// Intro calls the script's intro(name) function.
//
// Postcondition: Returns (line, true) when the script defines intro and it
// returns a non-empty string within the instruction limit; ("", false)
// otherwise. A failing or runaway call never propagates an error.
func (f *Flavor) Intro(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fn, ok := f.state.GetGlobal("intro").(*lua.LFunction)
	if !ok {
		return "", false
	}

	// Fresh opcode budget per call; a cancelled budget from a previous
	// runaway call must not starve later ones.
	f.state.SetContext(newCountingContext(f.limit))

	if err := f.state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LString(name)); err != nil {
		return "", false
	}
	ret := f.state.Get(-1)
	f.state.Pop(1)

	line, ok := ret.(lua.LString)
	if !ok || line == "" {
		return "", false
	}
	return string(line), true
}

// Close releases the underlying Lua state.
func (f *Flavor) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Close()
}
