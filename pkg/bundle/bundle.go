// Package bundle publishes configuration as container parameters and loads
// the service resources of the utility extension.
package bundle

import (
	"embed"
	"fmt"
	"sort"

	"github.com/karthickk/tmplutil/pkg/container"
	"github.com/pterm/pterm"
	"github.com/spf13/cast"
)

// DefaultAlias prefixes every published parameter
const DefaultAlias = "utility"

// Resource names
const (
	ServicesResource = "services.yaml"
	BrandingResource = "branding.yaml"
)

//go:embed resources/*.yaml
var resources embed.FS

// DefaultLoader reads the embedded resources. They reference parameters
// under DefaultAlias.
var DefaultLoader container.ResourceLoader = container.YAMLLoader{FS: resources, Dir: "resources"}

// Bundle loads configuration into a container
type Bundle struct {
	Alias  string
	Loader container.ResourceLoader
	Logger *pterm.Logger
}

// Option configures a Bundle
type Option func(*Bundle)

// WithAlias changes the parameter prefix
func WithAlias(alias string) Option {
	return func(b *Bundle) {
		b.Alias = alias
	}
}

// WithLoader changes where resources are read from
func WithLoader(loader container.ResourceLoader) Option {
	return func(b *Bundle) {
		b.Loader = loader
	}
}

// WithLogger enables logging of published parameters and loaded resources
func WithLogger(logger *pterm.Logger) Option {
	return func(b *Bundle) {
		b.Logger = logger
	}
}

// New creates a Bundle using the default alias and embedded resources
func New(opts ...Option) *Bundle {
	b := &Bundle{
		Alias:  DefaultAlias,
		Loader: DefaultLoader,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load publishes every setting as <alias>.<key>. Nested maps and lists are
// also published one level down as <alias>.<key>.<subkey>, where the value may
// itself still be a map. The services resource is always loaded; the
// branding resource only when branding is enabled and both a brand and an
// application are configured.
func (b *Bundle) Load(settings map[string]any, c *container.Container) error {
	params := Flatten(b.Alias, settings, 1)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.SetParameter(name, params[name])
		b.trace("parameter published", "name", name)
	}

	if err := b.load(c, ServicesResource); err != nil {
		return err
	}

	if brandingEnabled(settings) {
		if err := b.load(c, BrandingResource); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) load(c *container.Container, resource string) error {
	if err := b.Loader.Load(c, resource); err != nil {
		return fmt.Errorf("failed to load %s: %w", resource, err)
	}
	if b.Logger != nil {
		b.Logger.Debug("resource loaded", b.Logger.Args("resource", resource))
	}
	return nil
}

func (b *Bundle) trace(msg string, args ...any) {
	if b.Logger != nil {
		b.Logger.Trace(msg, b.Logger.Args(args...))
	}
}

func brandingEnabled(settings map[string]any) bool {
	branding, ok := asMap(settings["branding"])
	if !ok {
		return false
	}
	return cast.ToBool(branding["enabled"]) && branding["brand"] != nil && branding["application"] != nil
}
