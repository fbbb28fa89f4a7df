// Package gopatterns collects small, idiomatic renditions of three classic
// object-oriented design exercises.
//
// Each exercise is rebuilt around plain Go mechanisms instead of class
// machinery:
//
//   - box: a composite price tree as a closed value type. One Box type, leaf
//     or composite inside, priced by a fold and walked by an iterator. No
//     interface hierarchy, no casts.
//   - policy: a template method without inheritance. A fixed pricing driver
//     runs setup, assess, apply, report; the variable stages are plain
//     functions handed to the constructor.
//   - lazy: deferred once-only initialization as a library concern, for
//     values that are expensive to build and safe to share.
//   - app: the singleton turned right side up. One composition root
//     constructs the process services, passes them explicitly, and defers
//     startup through lazy instead of hiding state in a package global.
//
// The supporting packages carry the ambient concerns: config resolves
// defaults, file, environment, and flags in that order; logging wraps the
// structured logger the services report through; delivery is the client of
// the box tree, registering and pricing orders.
//
// Start with the runnable programs:
//   - cmd/patterns: a CLI with one demo per exercise
//   - examples/*: commented walkthroughs of each package
package gopatterns
