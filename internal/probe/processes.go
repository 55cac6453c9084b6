package probe

import (
	"strings"

	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// RunningProcesses snapshots the process table and matches each process name
// against the instrumentation-daemon fragments. Matching is case-sensitive
// substring containment; a failure to obtain the table at all is a pass.
func RunningProcesses(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	names, err := h.ProcessNames()
	if err != nil {
		return model.Pass(model.KindRunningProcesses)
	}
	for _, name := range names {
		for _, fragment := range c.DaemonNames {
			if strings.Contains(name, fragment) {
				return model.Fail(model.KindRunningProcesses, "instrumentation daemon running: "+fragment)
			}
		}
	}
	return model.Pass(model.KindRunningProcesses)
}
