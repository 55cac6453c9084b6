package probe

import (
	"strings"

	"tamperscan/internal/catalog"
	"tamperscan/internal/host"
	"tamperscan/internal/model"
)

// LoadedLibraries walks every dynamically loaded image in the current process
// and matches its pathname case-insensitively against the injection-framework
// name fragments.
func LoadedLibraries(h host.Host, c *catalog.Catalog) model.CheckOutcome {
	for _, image := range h.LoadedImages() {
		lower := strings.ToLower(image)
		for _, fragment := range c.InjectedLibraries {
			if strings.Contains(lower, strings.ToLower(fragment)) {
				return model.Fail(model.KindLoadedLibraries, "suspicious library loaded: "+image)
			}
		}
	}
	return model.Pass(model.KindLoadedLibraries)
}
