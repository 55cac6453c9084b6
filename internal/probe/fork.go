package probe

import (
	"fmt"

	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// ProcessFork attempts to duplicate the current process. Inside an intact
// sandbox duplication is denied; a valid child id means the sandbox is gone.
// A created child is terminated before reporting, best effort.
func ProcessFork(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	pid := h.Fork()
	if pid < 0 {
		return model.Pass(model.KindProcessFork)
	}
	if pid > 0 {
		h.Kill(pid)
	}
	return model.Fail(model.KindProcessFork, fmt.Sprintf("process duplication succeeded (child pid %d)", pid))
}
