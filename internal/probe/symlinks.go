package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// SymbolicLinks resolves each catalog path as a link. On an unmodified system
// these paths are plain directories and resolution yields nothing; a
// bootstrap that relocated them leaves a link behind.
func SymbolicLinks(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, path := range c.SymlinkPaths {
		if target := h.ReadSymlink(path); target != "" {
			return model.Fail(model.KindSymbolicLinks, path+" is a symbolic link to "+target)
		}
	}
	return model.Pass(model.KindSymbolicLinks)
}
