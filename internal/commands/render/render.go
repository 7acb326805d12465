package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/karthickk/tmplutil/internal/services"
	"github.com/karthickk/tmplutil/pkg/bundle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Keys added to the template data
const (
	KeyParams   = "Params"
	KeyBranding = "Branding"
)

type options struct {
	dataFile string
	output   string
	html     bool
}

// NewRenderCmd creates the render command
func NewRenderCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "render TEMPLATE",
		Short: "Render a Go template with the utility filters",
		Long: `Render a text/template (or html/template with --html) file with the phone,
price, boolean, md5 and timeAgo filters available. Use - to read the template
from stdin.

The data passed to the template is the YAML document given with --data, plus
.Params holding the published configuration parameters and .Branding when
branding is enabled.`,
		Example: `  # Render a template with data
  tmplutil render invoice.tmpl --data invoice.yaml

  # Render HTML to a file
  tmplutil render page.html --html --data page.yaml -o out.html

  # Template from stdin
  echo '{{ "5551234567" | phone }}' | tmplutil render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataFile, "data", "", "YAML file with template data")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Use html/template escaping")

	return cmd
}

func runRender(cmd *cobra.Command, source string, opts *options) error {
	rt, err := services.FromCommand(cmd)
	if err != nil {
		return err
	}

	text, name, err := readTemplate(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	data, err := loadData(opts.dataFile)
	if err != nil {
		return err
	}

	c, err := rt.Container()
	if err != nil {
		return err
	}
	if _, ok := data[KeyParams]; !ok {
		data[KeyParams] = c.Parameters()
	}
	if branding, ok := bundle.BrandingFrom(c); ok {
		if _, exists := data[KeyBranding]; !exists {
			data[KeyBranding] = branding
		}
	}

	var buf bytes.Buffer
	if opts.html {
		tmpl, err := htmltemplate.New(name).Funcs(rt.Extension.HTMLFuncMap()).Parse(text)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
	} else {
		tmpl, err := template.New(name).Funcs(rt.Extension.FuncMap()).Parse(text)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
	}

	rt.Logger.Debug("template rendered", rt.Logger.Args("template", name, "bytes", buf.Len()))

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readTemplate(stdin io.Reader, source string) (string, string, error) {
	if source == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read template from stdin: %w", err)
		}
		return string(b), "stdin", nil
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return "", "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(b), filepath.Base(source), nil
}

func loadData(path string) (map[string]any, error) {
	data := map[string]any{}
	if path == "" {
		return data, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data %s: %w", path, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
