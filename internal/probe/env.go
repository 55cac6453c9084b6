package probe

import (
	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// EnvironmentVariables looks for dynamic-loader injection hooks in the
// process environment. Presence alone fails, even with an empty value.
func EnvironmentVariables(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, name := range c.EnvironmentVariables {
		if _, ok := h.LookupEnv(name); ok {
			return model.Fail(model.KindEnvironmentVariables, "suspicious environment variable set: "+name)
		}
	}
	return model.Pass(model.KindEnvironmentVariables)
}
