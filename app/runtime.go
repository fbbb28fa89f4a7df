package app

import (
	"errors"
	"fmt"

	"github.com/sghaida/gopatterns/box"
	"github.com/sghaida/gopatterns/config"
	"github.com/sghaida/gopatterns/delivery"
	"github.com/sghaida/gopatterns/lazy"
	"github.com/sghaida/gopatterns/logging"
	"github.com/sghaida/gopatterns/policy"
)

// Component names registered by New.
//
// Keys are constants so callers resolving by name cannot typo them.
const (
	ComponentConfig         = "config"
	ComponentLogger         = "logger"
	ComponentDelivery       = "delivery"
	ComponentCommercialAuto = "rater.commercial-auto"
	ComponentBusinessOwners = "rater.business-owners"
)

// ErrNilConfig is returned when a Runtime is constructed without a config.
var ErrNilConfig = errors.New("app: nil config")

// Runtime holds the process-wide services, constructed once and passed
// explicitly to whoever needs them.
type Runtime struct {
	Config   *config.Config
	Log      *logging.Logger
	Delivery *delivery.Service

	// The stock raters, ready to price the two demo policy types.
	CommercialAuto *policy.Rater
	BusinessOwners *policy.Rater

	components *Components
}

// New constructs and wires a Runtime from the given config.
//
// The config is validated first, so a Runtime that exists is a Runtime whose
// services agree with its configuration.
func New(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging.Mode)
	if err != nil {
		return nil, fmt.Errorf("app: build logger: %w", err)
	}

	rt := &Runtime{
		Config:         cfg,
		Log:            log,
		Delivery:       delivery.NewService(log.With("component", "delivery"), box.Box{}),
		CommercialAuto: policy.CommercialAuto(log.With("component", "policy")),
		BusinessOwners: policy.BusinessOwners(log.With("component", "policy")),
		components:     NewComponents(),
	}

	wired := map[string]any{
		ComponentConfig:         rt.Config,
		ComponentLogger:         rt.Log,
		ComponentDelivery:       rt.Delivery,
		ComponentCommercialAuto: rt.CommercialAuto,
		ComponentBusinessOwners: rt.BusinessOwners,
	}
	for name, v := range wired {
		if err := rt.components.Provide(name, v); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// MustNew is New panicking on error, for composition roots where a failed
// startup has nowhere to report but up.
func MustNew(cfg *config.Config) *Runtime {
	rt, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return rt
}

// Components returns the named components New wired.
func (r *Runtime) Components() *Components {
	return r.components
}

// Close flushes the runtime's logger. Call it before process exit.
func (r *Runtime) Close() {
	if r.Log != nil {
		r.Log.Sync()
	}
}

// Boot owns the deferred, once-only construction of a Runtime.
//
// It is the process-level rendition of the lazy accessor: the composition
// root creates one Boot, hands it around, and the first Runtime call, from
// whichever goroutine gets there first, builds the one Runtime every later
// call returns.
type Boot struct {
	rt *lazy.Value[*Runtime]
}

// NewBoot validates the config now and defers construction to first use.
//
// Validating eagerly keeps the deferred path infallible: by the time Runtime
// runs the initializer, the inputs are known good.
func NewBoot(cfg *config.Config) (*Boot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Boot{
		rt: lazy.New(func() *Runtime { return MustNew(cfg) }),
	}, nil
}

// Runtime returns the one Runtime, constructing it on first call.
func (b *Boot) Runtime() *Runtime {
	return b.rt.Get()
}

// Started reports whether the Runtime has been constructed yet.
func (b *Boot) Started() bool {
	return b.rt.Initialized()
}
