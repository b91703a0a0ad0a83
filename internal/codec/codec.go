// Package codec converts raw driver values into the typed, nullable
// fields used by entities.
//
// Drivers disagree on how they hand back a value: pgx returns int64 for
// bigint and time.Time for timestamps, SQLite returns int64 for booleans
// and sometimes text for timestamps. The codec accepts every lossless
// representation and rejects the rest with *errs.ColumnTypeError. A NULL
// column always decodes to a nil pointer.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
)

// Row is one result row keyed by column alias.
type Row map[string]any

// Value lists the Go types a column can be decoded into.
type Value interface {
	int64 | string | bool | time.Time
}

// timeLayouts are tried in order when a timestamp arrives as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

var errLossy = errors.New("conversion would lose information")

// Get reads column from row and converts it to T.
//
// It returns (nil, nil) for NULL, a *errs.ColumnTypeError when the value
// cannot be converted, and a *errs.MalformedQueryError when the column was
// never projected.
func Get[T Value](row Row, column string) (*T, error) {
	raw, ok := row[column]
	if !ok {
		return nil, errs.Malformed("column %q is not part of the projection", column)
	}
	return Decode[T](column, raw)
}

// Decode converts a single raw driver value to T. column is only used for error reporting.
func Decode[T Value](column string, raw any) (*T, error) {
	if raw == nil {
		return nil, nil
	}

	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case int64:
		out, err = toInt64(raw)
	case string:
		out, err = toString(raw)
	case bool:
		out, err = toBool(raw)
	case time.Time:
		out, err = toTime(raw)
	}
	if err != nil {
		return nil, &errs.ColumnTypeError{
			Column: column,
			Target: fmt.Sprintf("%T", zero),
			Value:  raw,
			Err:    err,
		}
	}

	v := out.(T)
	return &v, nil
}

func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, errLossy
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errLossy
		}
		return int64(v), nil
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
	default:
		return 0, fmt.Errorf("unsupported source type %T", raw)
	}
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errLossy
	}
	return int64(f), nil
}

func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported source type %T", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case []byte:
		return strconv.ParseBool(string(v))
	}

	n, err := toInt64(raw)
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errLossy
	}
}

func toTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported source type %T", raw)
	}
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	// time.Time.String() appends a monotonic clock reading.
	if i := strings.Index(s, " m="); i >= 0 {
		s = s[:i]
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time format %q", s)
}
