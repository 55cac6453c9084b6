package probe

import (
	"path/filepath"

	"github.com/google/uuid"

	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// RestrictedDirectories tries to create and delete a uniquely named file in
// each protected root-level directory. On an unmodified system both attempts
// must be denied; a completed write+delete means sandbox permissions are
// gone. Errors during the attempt are the expected outcome and move the loop
// to the next directory.
func RestrictedDirectories(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, dir := range c.ProtectedDirectories {
		path := filepath.Join(dir, ".tamperscan_"+uuid.NewString())
		if err := h.WriteFile(path, []byte(".")); err != nil {
			continue
		}
		if err := h.RemoveFile(path); err != nil {
			continue
		}
		return model.Fail(model.KindRestrictedDirectories, "protected directory is writable: "+dir)
	}
	return model.Pass(model.KindRestrictedDirectories)
}
