package policy

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sghaida/gopatterns/logging"
)

// Quote is the working state a rater carries across its stages.
//
// Base is the intermediate assessment the first stage produces; Premium is the
// final amount the second stage derives from it.
type Quote struct {
	Account string
	Base    decimal.Decimal
	Premium decimal.Decimal
}

// StageFunc is one customizable pricing stage. It mutates the quote in place.
type StageFunc func(q *Quote)

// Stage identifies a step of the fixed pricing sequence, in the order Price
// runs them.
type Stage string

const (
	// StageSetup zeroes the quote state.
	StageSetup Stage = "setup"
	// StageAssess produces the intermediate Base amount.
	StageAssess Stage = "assess"
	// StageApply derives the Premium from the Base.
	StageApply Stage = "apply"
	// StageReport logs the priced quote.
	StageReport Stage = "report"
)

// TraceFunc observes a completed stage with a snapshot of the quote.
//
// Tracing exists so callers (and tests) can watch the sequence without the
// driver giving up control of it.
type TraceFunc func(stage Stage, q Quote)

// ErrEmptyName is returned when a rater is built without a name.
var ErrEmptyName = errors.New("policy: empty rater name")

// NilStageError is returned when a rater is built with a nil stage function,
// naming which stage was missing.
type NilStageError struct{ Stage Stage }

// Error implements the error interface.
func (e NilStageError) Error() string {
	// Example: policy: nil assess stage
	return "policy: nil " + string(e.Stage) + " stage"
}

// Rater prices one type of policy.
//
// The two supplied stages are the only variable parts; everything else about
// the sequence is fixed by Price.
type Rater struct {
	name   string
	assess StageFunc
	apply  StageFunc
	log    *logging.Logger
}

// NewRater builds a Rater from its two customizable stages.
//
// It fails with ErrEmptyName or NilStageError when a part is missing. A nil
// logger falls back to the discarding logger.
func NewRater(log *logging.Logger, name string, assess, apply StageFunc) (*Rater, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if assess == nil {
		return nil, NilStageError{Stage: StageAssess}
	}
	if apply == nil {
		return nil, NilStageError{Stage: StageApply}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Rater{name: name, assess: assess, apply: apply, log: log}, nil
}

// Name returns the rater's name.
func (r *Rater) Name() string { return r.name }

// Price runs the fixed sequence setup → assess → apply → report for the given
// account and returns the resulting quote.
//
// Observers, if any, are notified after each stage with a snapshot of the
// quote. Price is deterministic for deterministic stages: setup re-zeroes the
// state, so repeated calls price identically.
func (r *Rater) Price(account string, observe ...TraceFunc) Quote {
	q := Quote{Account: account}

	r.runStage(StageSetup, r.setup, &q, observe)
	r.runStage(StageAssess, r.assess, &q, observe)
	r.runStage(StageApply, r.apply, &q, observe)
	r.runStage(StageReport, r.report, &q, observe)

	return q
}

// setup zeroes the amounts so every pricing run starts clean.
func (r *Rater) setup(q *Quote) {
	q.Base = decimal.Zero
	q.Premium = decimal.Zero
}

// report logs the priced quote.
func (r *Rater) report(q *Quote) {
	r.log.Info("policy priced",
		"rater", r.name,
		"account", q.Account,
		"base", q.Base,
		"premium", q.Premium,
	)
}

// runStage executes one stage and notifies the observers.
func (r *Rater) runStage(s Stage, fn StageFunc, q *Quote, observe []TraceFunc) {
	fn(q)
	for _, ob := range observe {
		ob(s, *q)
	}
}
