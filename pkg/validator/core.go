package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Names of the built-in validators.
const (
	NotEmptyName    = "not_empty"
	LengthName      = "length"
	NumberValueName = "number_value"
	NumericName     = "numeric"
	RegexName       = "regex"
	EmailName       = "email"
	UUIDName        = "uuid"
	OneOfName       = "one_of"
)

// Defaults returns the built-in validators keyed by name.
func Defaults() map[string]validation.Validator {
	return map[string]validation.Validator{
		NotEmptyName:    NotEmpty(),
		LengthName:      Length(),
		NumberValueName: NumberValue(),
		NumericName:     Numeric(),
		RegexName:       Regex(),
		EmailName:       Email(),
		UUIDName:        UUID(),
		OneOfName:       OneOf(),
	}
}

// RegisterDefaults registers every built-in validator in reg, replacing entries
// with the same names.
func RegisterDefaults(reg *validation.ValidatorRegistry) error {
	var errs []error
	for name, v := range Defaults() {
		if err := reg.Register(name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// text renders a field value for string based checks. Nil renders as "".
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// number converts numeric values and numeric strings. NaN and infinities are rejected.
func number(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numberConfig reads an optional numeric configuration entry.
func numberConfig(cfg validation.Config, key string) (float64, bool, error) {
	v, ok := cfg[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := number(v)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidConfig, key, v)
	}
	return f, true, nil
}

// boolConfig reads an optional boolean configuration entry.
func boolConfig(cfg validation.Config, key string) bool {
	switch t := cfg[key].(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}
