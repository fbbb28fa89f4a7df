// Command patterns is a walkthrough CLI for the gopatterns packages.
//
// The binary exercises each package of the module end to end: it loads
// configuration, wires a runtime, and runs one small, self-contained demo per
// subcommand. It exists so the packages can be seen working together from a
// shell, not only from the example programs and the tests.
//
// Subcommands
//
//   - order    compose a nested order of boxes and price it
//   - rate     price the stock policy types through the staged rater
//   - boot     race goroutines through deferred startup and count runtimes
//   - init     write a default config file
//   - version  print build information
//
// Configuration
//
// Every subcommand that builds a runtime resolves its configuration the same
// way, from lowest to highest precedence:
//
//  1. Built-in defaults
//  2. A config file (.gopatterns.yml in the working directory, or --config)
//  3. GOPATTERNS_* environment variables (GOPATTERNS_LOGGING_MODE, ...)
//  4. Command-line flags (--log-mode, --currency)
//
// A missing config file is fine; an unreadable or invalid one is an error.
//
// Examples
//
//	patterns init
//	patterns order
//	patterns order --currency EUR
//	patterns rate --account ACC-2044 --trace
//	patterns boot --goroutines 16
//	patterns version --format json
//
// Exit codes
//
// 0 on success, 1 on any configuration, wiring, or runtime error.
package main
