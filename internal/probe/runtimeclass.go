package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// RuntimeClasses queries the live runtime type registry for the type that
// anti-detection tooling registers. Only the combination of the type being
// present and exposing the known member counts as a hit.
func RuntimeClasses(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	if c.RuntimeClass != "" && h.RuntimeClassExposes(c.RuntimeClass, c.RuntimeMember) {
		return model.Fail(model.KindRuntimeClasses, "anti-detection runtime type registered: "+c.RuntimeClass)
	}
	return model.Pass(model.KindRuntimeClasses)
}
