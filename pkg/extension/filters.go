package extension

import (
	"errors"
	"fmt"
	"time"

	"github.com/karthickk/tmplutil/pkg/format"
	"github.com/spf13/cast"
)

var (
	// ErrMissingValue is returned when a filter is called without a value
	ErrMissingValue = errors.New("missing value")
	// ErrTooManyArguments is returned when a filter gets more options than it accepts
	ErrTooManyArguments = errors.New("too many arguments")
)

// splitArgs separates the piped value (the last argument) from the options.
func splitArgs(filter string, args []any, maxOptions int) (any, []any, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", filter, ErrMissingValue)
	}
	options := args[:len(args)-1]
	if len(options) > maxOptions {
		return nil, nil, fmt.Errorf("%s: %w: got %d options, accepts %d", filter, ErrTooManyArguments, len(options), maxOptions)
	}
	return args[len(args)-1], options, nil
}

func stringOption(filter, name string, options []any, i int, fallback string) (string, error) {
	if i >= len(options) {
		return fallback, nil
	}
	s, err := cast.ToStringE(options[i])
	if err != nil {
		return "", fmt.Errorf("%s: invalid %s: %w", filter, name, err)
	}
	return s, nil
}

// Phone implements the phone filter: phone [format] value
func (e *Extension) Phone(args ...any) (string, error) {
	value, options, err := splitArgs(FilterPhone, args, 1)
	if err != nil {
		return "", err
	}

	tmpl, err := stringOption(FilterPhone, "format", options, 0, e.defaults.PhoneFormat)
	if err != nil {
		return "", err
	}

	raw, err := cast.ToStringE(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", FilterPhone, err)
	}

	return format.Phone(raw, tmpl), nil
}

// Price implements the price filter: price [decimals [decimalSeparator [thousandsSeparator]]] value
func (e *Extension) Price(args ...any) (string, error) {
	value, options, err := splitArgs(FilterPrice, args, 3)
	if err != nil {
		return "", err
	}

	f := e.defaults.Price
	if len(options) > 0 {
		if f.Decimals, err = cast.ToIntE(options[0]); err != nil {
			return "", fmt.Errorf("%s: invalid decimals: %w", FilterPrice, err)
		}
	}
	if f.DecimalSeparator, err = stringOption(FilterPrice, "decimal separator", options, 1, f.DecimalSeparator); err != nil {
		return "", err
	}
	if f.ThousandsSeparator, err = stringOption(FilterPrice, "thousands separator", options, 2, f.ThousandsSeparator); err != nil {
		return "", err
	}

	if s, ok := value.(string); ok {
		out, err := f.FormatString(s)
		if err != nil {
			return "", fmt.Errorf("%s: %w", FilterPrice, err)
		}
		return out, nil
	}

	v, err := cast.ToFloat64E(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", FilterPrice, format.ErrInvalidNumber, err)
	}
	return f.Format(v), nil
}

// Boolean implements the boolean filter: boolean [trueLabel [falseLabel]] value
func (e *Extension) Boolean(args ...any) (string, error) {
	value, options, err := splitArgs(FilterBoolean, args, 2)
	if err != nil {
		return "", err
	}

	trueLabel, err := stringOption(FilterBoolean, "true label", options, 0, e.defaults.TrueLabel)
	if err != nil {
		return "", err
	}
	falseLabel, err := stringOption(FilterBoolean, "false label", options, 1, e.defaults.FalseLabel)
	if err != nil {
		return "", err
	}

	return format.Boolean(format.BoolValueOf(value), trueLabel, falseLabel), nil
}

// MD5 implements the md5 filter: md5 value
func (e *Extension) MD5(value any) (string, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", FilterMD5, err)
	}
	return format.MD5(s), nil
}

// TimeAgo implements the timeAgo filter: timeAgo [granularity [suffix [reference]]] value.
// It renders an empty string when value is after the reference instant.
func (e *Extension) TimeAgo(args ...any) (string, error) {
	value, options, err := splitArgs(FilterTimeAgo, args, 3)
	if err != nil {
		return "", err
	}

	now := e.currentTime()

	granularity := e.defaults.Granularity
	if len(options) > 0 {
		granularity = format.Granularity(options[0])
	}

	suffix, err := stringOption(FilterTimeAgo, "suffix", options, 1, e.defaults.Suffix)
	if err != nil {
		return "", err
	}

	reference := now
	if len(options) > 2 && options[2] != nil {
		if reference, err = e.instant(options[2], now); err != nil {
			return "", fmt.Errorf("%s: reference: %w", FilterTimeAgo, err)
		}
	}

	instant, err := e.instant(value, now)
	if err != nil {
		return "", fmt.Errorf("%s: %w", FilterTimeAgo, err)
	}

	phrase, _ := format.TimeAgo(instant, reference, granularity, suffix)
	return phrase, nil
}

// FormatTimeAgo is TimeAgo for callers that already hold the instants. ok is
// false when instant is after reference.
func (e *Extension) FormatTimeAgo(instant time.Time, reference *time.Time, granularity int, suffix string) (string, bool) {
	ref := e.currentTime()
	if reference != nil {
		ref = *reference
	}
	return format.TimeAgo(instant, ref, granularity, suffix)
}

// ParseInstant parses a date string in the extension's location
func (e *Extension) ParseInstant(s string) (time.Time, error) {
	return format.ParseInstant(s, e.currentTime())
}

func (e *Extension) instant(v any, now time.Time) (time.Time, error) {
	switch v := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("%w: no value", format.ErrInvalidDate)
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", format.ErrInvalidDate)
		}
		return *v, nil
	case string:
		return format.ParseInstant(v, now)
	case []byte:
		return format.ParseInstant(string(v), now)
	}

	secs, err := cast.ToInt64E(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unsupported value %T", format.ErrInvalidDate, v)
	}
	return time.Unix(secs, 0).In(now.Location()), nil
}
