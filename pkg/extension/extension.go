// Package extension exposes the formatters in pkg/format as template filters.
//
// Filters take the piped value as their last argument, so options come first:
//
//	{{ .Phone | phone }}
//	{{ .Phone | phone "$1-$2-$3-$4" }}
//	{{ .Total | price 3 "." "," }}
//	{{ .Active | boolean "Y" "N" }}
//	{{ .Email | md5 }}
//	{{ .CreatedAt | timeAgo 2 "ago" }}
package extension

import (
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/karthickk/tmplutil/pkg/format"
)

// Name identifies the extension when it is registered with a host
const Name = "utility_extension"

// Filter names
const (
	FilterPhone   = "phone"
	FilterPrice   = "price"
	FilterBoolean = "boolean"
	FilterMD5     = "md5"
	FilterTimeAgo = "timeAgo"
)

// Filter is a named template function
type Filter struct {
	Name string
	Func any
}

// Defaults holds the option values a filter uses when the template omits them
type Defaults struct {
	PhoneFormat string
	Price       format.PriceFormat
	TrueLabel   string
	FalseLabel  string
	Granularity int
	Suffix      string
}

// DefaultDefaults returns the stock filter options
func DefaultDefaults() Defaults {
	return Defaults{
		PhoneFormat: format.DefaultPhoneFormat,
		Price:       format.DefaultPriceFormat,
		TrueLabel:   format.DefaultTrueLabel,
		FalseLabel:  format.DefaultFalseLabel,
		Granularity: format.DefaultGranularity,
		Suffix:      format.DefaultSuffix,
	}
}

// Extension holds the filter set. It is immutable after New and safe for
// concurrent use.
type Extension struct {
	defaults Defaults
	now      func() time.Time
	location *time.Location
}

// Option configures an Extension
type Option func(*Extension)

// WithDefaults replaces the default filter options
func WithDefaults(d Defaults) Option {
	return func(e *Extension) {
		e.defaults = d
	}
}

// WithClock sets the source of the current instant used by timeAgo
func WithClock(now func() time.Time) Option {
	return func(e *Extension) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the location date strings are parsed in
func WithLocation(loc *time.Location) Option {
	return func(e *Extension) {
		if loc != nil {
			e.location = loc
		}
	}
}

// New creates an Extension
func New(opts ...Option) *Extension {
	e := &Extension{
		defaults: DefaultDefaults(),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the registration name of the extension
func (e *Extension) Name() string {
	return Name
}

// Defaults returns the filter defaults in use
func (e *Extension) Defaults() Defaults {
	return e.defaults
}

// Filters returns every filter in registration order
func (e *Extension) Filters() []Filter {
	return []Filter{
		{Name: FilterPhone, Func: e.Phone},
		{Name: FilterPrice, Func: e.Price},
		{Name: FilterBoolean, Func: e.Boolean},
		{Name: FilterMD5, Func: e.MD5},
		{Name: FilterTimeAgo, Func: e.TimeAgo},
	}
}

// FuncMap returns the filters for text/template
func (e *Extension) FuncMap() template.FuncMap {
	funcs := template.FuncMap{}
	for _, f := range e.Filters() {
		funcs[f.Name] = f.Func
	}
	return funcs
}

// HTMLFuncMap returns the filters for html/template
func (e *Extension) HTMLFuncMap() htmltemplate.FuncMap {
	return htmltemplate.FuncMap(e.FuncMap())
}

func (e *Extension) currentTime() time.Time {
	return e.now().In(e.location)
}
