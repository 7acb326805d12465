package bundle

import (
	"github.com/karthickk/tmplutil/pkg/container"
	"github.com/spf13/cast"
)

// BrandingService is the service the branding resource registers
const BrandingService = "utility_branding"

// Branding names the product a template is rendered for
type Branding struct {
	Brand       string
	Application string
}

// Title joins brand and application
func (b Branding) Title() string {
	switch {
	case b.Brand == "":
		return b.Application
	case b.Application == "":
		return b.Brand
	default:
		return b.Brand + " " + b.Application
	}
}

// BrandingFrom returns the branding registered in c, if any
func BrandingFrom(c *container.Container) (Branding, bool) {
	def, ok := c.Definition(BrandingService)
	if !ok || len(def.Arguments) < 2 {
		return Branding{}, false
	}
	return Branding{
		Brand:       cast.ToString(def.Arguments[0]),
		Application: cast.ToString(def.Arguments[1]),
	}, true
}
