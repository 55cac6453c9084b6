package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// FilePermissions tests the narrow catalog subset of paths that an intact
// sandbox must never let the process read.
func FilePermissions(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, path := range c.RestrictedReadPaths {
		if h.IsReadable(path) {
			return model.Fail(model.KindFilePermissions, "restricted path is readable: "+path)
		}
	}
	return model.Pass(model.KindFilePermissions)
}
