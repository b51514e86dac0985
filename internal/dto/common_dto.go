package dto

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// FlexUint accepts a JSON number or a numeric string ("2") and stores it as an
// unsigned integer. Fractions and negative values are rejected.
type FlexUint uint64

func (n *FlexUint) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*n = 0
		return nil
	}
	switch v := raw.(type) {
	case bool:
		return &json.UnmarshalTypeError{Value: "bool", Type: reflect.TypeOf(uint64(0))}
	case float64:
		if v != math.Trunc(v) {
			return &json.UnmarshalTypeError{Value: "number " + string(b), Type: reflect.TypeOf(uint64(0))}
		}
	}
	var (
		v   uint64
		err error
	)
	if str, ok := raw.(string); ok {
		v, err = ParseDecimalUint(str)
	} else {
		v, err = cast.ToUint64E(raw)
	}
	if err != nil {
		return &json.UnmarshalTypeError{Value: describeJSON(raw), Type: reflect.TypeOf(uint64(0))}
	}
	*n = FlexUint(v)
	return nil
}

// ParseDecimalUint reads a base-10 unsigned integer. Leading zeros keep their
// decimal meaning ("010" is 10) and 0x/0o/0b prefixes are rejected.
func ParseDecimalUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

func (n FlexUint) Uint() uint { return uint(n) }

func describeJSON(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "value"
}

// IDParam is the :id path segment of every by-id route.
type IDParam struct {
	ID uint `uri:"id" validate:"gt=0"`
}

// RolParam is the :role path segment of /personas/role/:role.
type RolParam struct {
	Rol string `uri:"role" validate:"required,max=50"`
}

// FechaLayout is how calendar dates travel over the wire.
const FechaLayout = "2006-01-02"

// ParseFecha accepts a plain date or a full RFC 3339 timestamp and returns
// the calendar date at midnight UTC.
func ParseFecha(s string) (time.Time, error) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		ts, err2 := time.Parse(time.RFC3339, s)
		if err2 != nil {
			return time.Time{}, err
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t, nil
}
