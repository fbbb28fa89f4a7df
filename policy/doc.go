// Package policy prices insurance policies in a fixed stage sequence: the
// Template Method exercise without the inheritance.
//
// The textbook version is an abstract InsurancePolicy whose pricePolicy()
// calls setup, two abstract stages, then a report step; subclasses override
// the two stages. Go has no abstract classes and does not miss them here: the
// driver is a plain method that owns the ordering, and the two customizable
// stages are functions you hand to NewRater. A Rater cannot reorder, add, or
// skip steps: the sequence setup, assess, apply, report is compiled into
// Price, which is the entire point of the pattern.
//
// Stock raters for the two demo policy types live in raters.go.
package policy
