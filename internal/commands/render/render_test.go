package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/karthickk/tmplutil/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	config := writeFile(t, home, "tmplutil.yaml", `
timezone: UTC
branding:
  enabled: true
  brand: Acme
  application: Portal
`)

	rt, err := services.Setup(services.Options{
		ConfigFile: config,
		LogWriter:  &bytes.Buffer{},
		Now:        func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	cmd := NewRenderCmd()
	cmd.SetContext(services.WithRuntime(context.Background(), rt))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return buf.String(), err
}

func TestRenderWithData(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "invoice.tmpl",
		`{{ .phone | phone }} {{ .total | price }} {{ .paid | boolean "Paid" "Due" }} {{ .created | timeAgo 2 }}`)
	data := writeFile(t, dir, "invoice.yaml", `
phone: "5551234567"
total: 1234.5
paid: true
created: "2026-10-13 09:30:00"
`)

	out, err := run(t, "", tmpl, "--data", data)
	require.NoError(t, err)
	assert.Equal(t, "(555) 123-4567 $1,234.50 Paid 1 day 2 hours ago", out)
}

func TestRenderParamsAndBranding(t *testing.T) {
	out, err := run(t, `{{ .Branding.Title }} {{ index (index .Params "utility.filters.phone") "format" }}`, "-")
	require.NoError(t, err)
	assert.Equal(t, "Acme Portal ($2) $3-$4", out)
}

func TestRenderHTML(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "page.html", `<p>{{ .name }}</p><img src="{{ .email | md5 }}">`)
	data := writeFile(t, dir, "page.yaml", "name: \"<b>Ann</b>\"\nemail: abcdefg\n")

	out, err := run(t, "", tmpl, "--html", "--data", data)
	require.NoError(t, err)
	assert.Equal(t, `<p>&lt;b&gt;Ann&lt;/b&gt;</p><img src="7ac66c0f148de9519b8bd264312c4d64">`, out)
}

func TestRenderToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")

	out, err := run(t, `{{ "no" | boolean }}`, "-", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "No", string(b))
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	badData := writeFile(t, dir, "bad.yaml", "a: [1, 2\n")

	testCases := []struct {
		name  string
		stdin string
		args  []string
		msg   string
	}{
		{"missing template", "", []string{filepath.Join(dir, "missing.tmpl")}, "failed to read template"},
		{"parse error", "{{ .a ", []string{"-"}, "failed to parse template"},
		{"filter error", `{{ "abc" | price }}`, []string{"-"}, "failed to render template"},
		{"bad data", "x", []string{"-", "--data", badData}, "failed to parse data"},
		{"missing data", "x", []string{"-", "--data", filepath.Join(dir, "none.yaml")}, "failed to read data"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.stdin, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
