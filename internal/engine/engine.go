// Package engine runs the full probe inventory and aggregates the outcomes
// into one verdict.
package engine

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
	"tamperscan/internal/probe"
)

// Engine pairs a host binding with a signature catalog. Both are fixed at
// construction; the engine itself holds no mutable state, so a single value
// can serve any number of evaluation passes.
type Engine struct {
	host host.Host
	cat  catalog.Catalog
}

func New(h host.Host, c catalog.Catalog) *Engine {
	return &Engine{host: h, cat: c}
}

// Evaluate invokes every probe exactly once, in the declared kind order, with
// no short-circuit on first failure — every probe always runs so the full
// failure set is captured. The returned slice holds one outcome per kind in
// execution order.
func (e *Engine) Evaluate() []model.CheckOutcome {
	kinds := model.AllKinds()
	outcomes := make([]model.CheckOutcome, 0, len(kinds))
	for _, kind := range kinds {
		outcomes = append(outcomes, probe.Run(kind, e.host, &e.cat))
	}
	return outcomes
}

// DetailedStatus runs one fresh evaluation pass and returns the aggregate
// verdict. Results are never cached: a later call reflects whatever the OS
// state is at that moment.
func (e *Engine) DetailedStatus() model.Verdict {
	return model.BuildVerdict(e.Evaluate())
}

// IsDeviceCompromised runs one fresh evaluation pass and reports whether any
// probe found evidence of tampering.
func (e *Engine) IsDeviceCompromised() bool {
	return e.DetailedStatus().Compromised
}
