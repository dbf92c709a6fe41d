// Package core holds process-wide crash handling shared by every goroutine
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashCleanup registers the terminal restore run before a crash report
// Pass nil to clear it once the screen is finalized
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashCleanup = nil
	crashMu.Unlock()

	// Restore terminal to sane state before anything is printed
	if cleanup != nil {
		cleanup()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mFLIP-CLOCK CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
