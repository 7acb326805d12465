package container

import (
	"sort"
	"sync"
)

// Definition describes a service registered by a resource
type Definition struct {
	Name      string   `yaml:"-"`
	Class     string   `yaml:"class"`
	Arguments []any    `yaml:"arguments"`
	Tags      []string `yaml:"tags"`
	Resource  string   `yaml:"-"`
}

// Container holds named parameters and service definitions. It is safe for
// concurrent use.
type Container struct {
	mu          sync.RWMutex
	parameters  map[string]any
	definitions map[string]Definition
	resources   []string
}

// New creates an empty container
func New() *Container {
	return &Container{
		parameters:  make(map[string]any),
		definitions: make(map[string]Definition),
	}
}

// SetParameter sets a parameter, replacing any previous value
func (c *Container) SetParameter(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parameters[name] = value
}

// Parameter returns a parameter value
func (c *Container) Parameter(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.parameters[name]
	return v, ok
}

// HasParameter reports whether a parameter is set
func (c *Container) HasParameter(name string) bool {
	_, ok := c.Parameter(name)
	return ok
}

// Parameters returns a copy of every parameter
func (c *Container) Parameters() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]any, len(c.parameters))
	for k, v := range c.parameters {
		out[k] = v
	}
	return out
}

// ParameterNames returns the parameter names in sorted order
func (c *Container) ParameterNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.parameters)
}

// Register adds a service definition
func (c *Container) Register(name string, def Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	def.Name = name
	c.definitions[name] = def
}

// Definition returns a service definition
func (c *Container) Definition(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.definitions[name]
	return def, ok
}

// DefinitionNames returns the registered service names in sorted order
func (c *Container) DefinitionNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.definitions)
}

// Resources returns the names of the loaded resources in load order
func (c *Container) Resources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.resources...)
}

func (c *Container) markLoaded(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
