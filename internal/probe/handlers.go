package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// ExternalHandlers checks whether any tamper-management app has registered an
// external handler for one of the catalog schemes.
func ExternalHandlers(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, scheme := range c.HandlerSchemes {
		if h.SchemeHandlerRegistered(scheme) {
			return model.Fail(model.KindExternalHandlers, "external handler registered for scheme: "+scheme)
		}
	}
	return model.Pass(model.KindExternalHandlers)
}
