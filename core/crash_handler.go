package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()
)

// SetCrashCleanup registers the function that restores the terminal before a crash report is printed
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanup = fn
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fn := cleanup
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
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
