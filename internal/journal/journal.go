// Package journal provides the append-only save journal. The "save"
// operations of the demo are simulated: each one is a single journal line,
// never a persisted file.
package journal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Prefix is the fixed prefix prepended to every journal line.
const Prefix = "journal: "

// Journal is an append-only line sink. A mutex serializes writes so
// concurrent callers never interleave within a line.
type Journal struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a Journal writing to w. Tests inject a capturing buffer here;
// the process-wide instance comes from Shared.
//
// Precondition: w must be non-nil.
func New(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Write appends one prefixed line for message. Write never reports failure
// to the caller; a broken sink silently drops the line.
func (j *Journal) Write(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.w, "%s%s\n", Prefix, message)
}

var (
	sharedMu sync.Mutex
	shared   *Journal
)

// Shared returns the process-wide journal backed by stdout, creating it on
// first use. Construction is guarded by a mutex: concurrent first callers
// all receive the same instance.
//
// Postcondition: Returns a non-nil *Journal; every call returns the same pointer.
func Shared() *Journal {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = New(os.Stdout)
	}
	return shared
}
