package policy

import (
	"github.com/shopspring/decimal"

	"github.com/sghaida/gopatterns/logging"
)

// CommercialAuto returns the stock rater for commercial auto policies:
// a flat base of 100 with the premium at twice the base, so 200.
func CommercialAuto(log *logging.Logger) *Rater {
	return mustRater(NewRater(log, "commercial-auto",
		func(q *Quote) { q.Base = decimal.NewFromInt(100) },
		func(q *Quote) { q.Premium = q.Base.Mul(decimal.NewFromInt(2)) },
	))
}

// BusinessOwners returns the stock rater for business owners policies:
// a base of 81082 with the premium at three times the base, so 243246.
func BusinessOwners(log *logging.Logger) *Rater {
	return mustRater(NewRater(log, "business-owners",
		func(q *Quote) { q.Base = decimal.NewFromInt(81082) },
		func(q *Quote) { q.Premium = q.Base.Mul(decimal.NewFromInt(3)) },
	))
}

// mustRater unwraps a (Rater, error) pair for the stock raters, whose inputs
// are statically valid.
func mustRater(r *Rater, err error) *Rater {
	if err != nil {
		panic(err)
	}
	return r
}
