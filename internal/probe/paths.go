package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// PathSignatures is the existence test against the second, disjoint path
// catalog covering newer (rootless) modification frameworks. Reported under
// its own kind so failures attribute to the right signature set.
func PathSignatures(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, path := range c.PathSignatures {
		if h.FileExists(path) {
			return model.Fail(model.KindPathSignatures, "modification framework path present: "+path)
		}
	}
	return model.Pass(model.KindPathSignatures)
}
