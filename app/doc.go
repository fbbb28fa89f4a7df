// Package app is the composition root: the answer this repo gives to the
// classic Singleton.
//
// The textbook Singleton hides one instance behind a static accessor, and
// every caller in the process quietly depends on it. Here the dependency is
// turned right side up: New builds the process-wide services (config, logger,
// delivery service, stock raters) exactly once, wires them together, and the
// caller owns the result and passes it down. Boot adds the lazy, once-only
// flavor on top for programs that want construction deferred to first use:
// however many goroutines ask, one Runtime is built and everyone gets it.
//
// A Runtime also carries a named component registry with typed lookup errors,
// so tooling and tests can ask "what was wired, and as what type" instead of
// poking at globals.
package app
