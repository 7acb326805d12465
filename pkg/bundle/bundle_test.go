package bundle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/karthickk/tmplutil/pkg/container"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoader struct {
	loaded []string
	err    error
}

func (l *recordingLoader) Load(_ *container.Container, name string) error {
	if l.err != nil {
		return l.err
	}
	l.loaded = append(l.loaded, name)
	return nil
}

func TestFlatten(t *testing.T) {
	settings := map[string]any{
		"log_level": "info",
		"filters": map[string]any{
			"phone": map[string]any{"format": "$2-$3-$4"},
		},
		"hosts": []any{"a", "b"},
	}

	testCases := []struct {
		name     string
		depth    int
		expected map[string]any
	}{
		{
			name:  "top level only",
			depth: 0,
			expected: map[string]any{
				"p.log_level": "info",
				"p.filters":   settings["filters"],
				"p.hosts":     settings["hosts"],
			},
		},
		{
			name:  "one level",
			depth: 1,
			expected: map[string]any{
				"p.log_level":     "info",
				"p.filters":       settings["filters"],
				"p.filters.phone": map[string]any{"format": "$2-$3-$4"},
				"p.hosts":         settings["hosts"],
				"p.hosts.0":       "a",
				"p.hosts.1":       "b",
			},
		},
		{
			name:  "two levels",
			depth: 2,
			expected: map[string]any{
				"p.log_level":            "info",
				"p.filters":              settings["filters"],
				"p.filters.phone":        map[string]any{"format": "$2-$3-$4"},
				"p.filters.phone.format": "$2-$3-$4",
				"p.hosts":                settings["hosts"],
				"p.hosts.0":              "a",
				"p.hosts.1":              "b",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Flatten("p", settings, tc.depth))
		})
	}
}

func TestFlattenWithoutPrefix(t *testing.T) {
	out := Flatten("", map[string]any{"a": map[any]any{1: "x"}}, 1)
	assert.Equal(t, map[string]any{"a": map[any]any{1: "x"}, "a.1": "x"}, out)
}

func TestLoadPublishesParameters(t *testing.T) {
	loader := &recordingLoader{}
	b := New(WithLoader(loader))
	c := container.New()

	settings := map[string]any{
		"timezone": "UTC",
		"merchant": map[string]any{
			"statements": map[string]any{"enabled": true},
			"name":       "Acme",
		},
	}

	require.NoError(t, b.Load(settings, c))

	assert.Equal(t, []string{
		"utility.merchant",
		"utility.merchant.name",
		"utility.merchant.statements",
		"utility.timezone",
	}, c.ParameterNames())

	v, _ := c.Parameter("utility.merchant.statements")
	assert.Equal(t, map[string]any{"enabled": true}, v)
	assert.Equal(t, []string{ServicesResource}, loader.loaded)
}

func TestLoadBranding(t *testing.T) {
	testCases := []struct {
		name     string
		branding any
		expected []string
	}{
		{
			name:     "enabled with brand and application",
			branding: map[string]any{"enabled": true, "brand": "Acme", "application": "Portal"},
			expected: []string{ServicesResource, BrandingResource},
		},
		{
			name:     "enabled as string",
			branding: map[string]any{"enabled": "true", "brand": "Acme", "application": "Portal"},
			expected: []string{ServicesResource, BrandingResource},
		},
		{
			name:     "disabled",
			branding: map[string]any{"enabled": false, "brand": "Acme", "application": "Portal"},
			expected: []string{ServicesResource},
		},
		{
			name:     "missing application",
			branding: map[string]any{"enabled": true, "brand": "Acme"},
			expected: []string{ServicesResource},
		},
		{
			name:     "missing brand",
			branding: map[string]any{"enabled": true, "application": "Portal"},
			expected: []string{ServicesResource},
		},
		{
			name:     "not a map",
			branding: "yes",
			expected: []string{ServicesResource},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader := &recordingLoader{}
			err := New(WithLoader(loader)).Load(map[string]any{"branding": tc.branding}, container.New())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, loader.loaded)
		})
	}
}

func TestLoadEmbeddedResources(t *testing.T) {
	c := container.New()
	settings := map[string]any{
		"branding": map[string]any{"enabled": true, "brand": "Acme", "application": "Portal"},
	}

	require.NoError(t, New().Load(settings, c))

	assert.Equal(t, []string{ServicesResource, BrandingResource}, c.Resources())

	def, ok := c.Definition("utility_extension")
	require.True(t, ok)
	assert.Contains(t, def.Tags, "template.extension")

	title, _ := c.Parameter("utility.branding.title")
	assert.Equal(t, "Acme Portal", title)

	branding, ok := BrandingFrom(c)
	require.True(t, ok)
	assert.Equal(t, Branding{Brand: "Acme", Application: "Portal"}, branding)
	assert.Equal(t, "Acme Portal", branding.Title())
}

func TestLoadWithoutBranding(t *testing.T) {
	c := container.New()
	require.NoError(t, New().Load(map[string]any{}, c))

	_, ok := BrandingFrom(c)
	assert.False(t, ok)
	assert.Equal(t, []string{ServicesResource}, c.Resources())
}

func TestLoadError(t *testing.T) {
	loader := &recordingLoader{err: errors.New("boom")}
	err := New(WithLoader(loader)).Load(map[string]any{}, container.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load services.yaml")
}

func TestLoadLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelTrace).WithWriter(&buf)

	b := New(WithLoader(&recordingLoader{}), WithLogger(logger), WithAlias("app"))
	c := container.New()
	require.NoError(t, b.Load(map[string]any{"name": "x"}, c))

	assert.True(t, c.HasParameter("app.name"))
	assert.Contains(t, buf.String(), "parameter published")
	assert.Contains(t, buf.String(), "resource loaded")
}

func TestBrandingTitle(t *testing.T) {
	assert.Equal(t, "Portal", Branding{Application: "Portal"}.Title())
	assert.Equal(t, "Acme", Branding{Brand: "Acme"}.Title())
}
