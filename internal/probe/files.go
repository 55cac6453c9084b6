package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// SuspiciousFiles looks for artifacts of classic modification frameworks. A
// path counts as present when it either exists or a read handle can be opened
// on it — some bootstraps hide the stat surface but not the open path.
func SuspiciousFiles(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, path := range c.SuspiciousFiles {
		if h.FileExists(path) || h.CanOpenFile(path) {
			return model.Fail(model.KindSuspiciousFiles, "suspicious file present: "+path)
		}
	}
	return model.Pass(model.KindSuspiciousFiles)
}
