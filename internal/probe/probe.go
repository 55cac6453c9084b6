// Package probe implements one self-contained check per tamper signal. A
// probe is a pure function of OS state: it never returns an error and never
// aborts a pass — internal faults resolve to a passing outcome, since absence
// of evidence is treated as absence of tampering.
package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// Func evaluates one tamper signal against live OS state.
type Func func(h host.Host, c *catalog.Catalog) model.CheckOutcome

// byKind is the compile-time dispatch table. The check set is a reviewed,
// fixed inventory; no dynamic registration exists.
var byKind = map[model.CheckKind]Func{
	model.KindExternalHandlers:      ExternalHandlers,
	model.KindSuspiciousFiles:       SuspiciousFiles,
	model.KindFilePermissions:       FilePermissions,
	model.KindRestrictedDirectories: RestrictedDirectories,
	model.KindProcessFork:           ProcessFork,
	model.KindSymbolicLinks:         SymbolicLinks,
	model.KindLoadedLibraries:       LoadedLibraries,
	model.KindRuntimeClasses:        RuntimeClasses,
	model.KindEnvironmentVariables:  EnvironmentVariables,
	model.KindPathSignatures:        PathSignatures,
	model.KindRunningProcesses:      RunningProcesses,
}

// Run executes the probe registered for kind. An unknown kind passes.
func Run(kind model.CheckKind, h host.Host, c *catalog.Catalog) model.CheckOutcome {
	fn, ok := byKind[kind]
	if !ok {
		return model.Pass(kind)
	}
	return fn(h, c)
}
