package container

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrResourceNotFound is returned when a resource file does not exist
	ErrResourceNotFound = errors.New("resource not found")
	// ErrUnknownParameter is returned when a %reference% names no parameter
	ErrUnknownParameter = errors.New("unknown parameter")
)

// ResourceLoader loads a named resource into a container
type ResourceLoader interface {
	Load(c *Container, name string) error
}

// resourceFile is the YAML layout of a resource:
//
//	parameters:
//	  utility.cache_dir: /tmp
//	services:
//	  utility_extension:
//	    class: extension.Extension
//	    arguments: ["%utility.filters%"]
//	    tags: [template.extension]
type resourceFile struct {
	Parameters map[string]any        `yaml:"parameters"`
	Services   map[string]Definition `yaml:"services"`
}

// YAMLLoader reads YAML resources from a file system
type YAMLLoader struct {
	FS  fs.FS
	Dir string
}

// Load implements ResourceLoader
func (l YAMLLoader) Load(c *Container, name string) error {
	file := path.Join(l.Dir, name)

	data, err := fs.ReadFile(l.FS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResourceNotFound, file)
		}
		return fmt.Errorf("failed to read resource %s: %w", file, err)
	}

	var res resourceFile
	if err := yaml.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("failed to parse resource %s: %w", file, err)
	}

	for _, key := range sortedKeys(res.Parameters) {
		value, err := c.resolve(res.Parameters[key])
		if err != nil {
			return fmt.Errorf("resource %s: parameter %s: %w", file, key, err)
		}
		c.SetParameter(key, value)
	}

	for _, id := range sortedKeys(res.Services) {
		def := res.Services[id]
		for i, arg := range def.Arguments {
			if def.Arguments[i], err = c.resolve(arg); err != nil {
				return fmt.Errorf("resource %s: service %s: %w", file, id, err)
			}
		}
		def.Resource = name
		c.Register(id, def)
	}

	c.markLoaded(name)
	return nil
}

// resolve replaces %name% references in string values. A value that is a
// single reference takes the referenced value as is; "%%" is a literal percent.
func (c *Container) resolve(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}

	if len(s) > 2 && strings.HasPrefix(s, "%") && strings.HasSuffix(s, "%") && !strings.Contains(s[1:len(s)-1], "%") {
		name := s[1 : len(s)-1]
		value, ok := c.Parameter(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
		}
		return value, nil
	}

	var b strings.Builder
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		s = s[start+1:]

		if strings.HasPrefix(s, "%") {
			b.WriteByte('%')
			s = s[1:]
			continue
		}

		end := strings.IndexByte(s, '%')
		if end < 0 {
			b.WriteByte('%')
			b.WriteString(s)
			break
		}

		name := s[:end]
		value, ok := c.Parameter(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
		}
		b.WriteString(fmt.Sprint(value))
		s = s[end+1:]
	}

	return b.String(), nil
}
