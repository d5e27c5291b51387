package shinigami

import (
	"math"
	"strconv"

	"github.com/samber/mo"
)

// The provider's payloads are decoded into generic trees (map[string]any, []any, float64, string, bool, nil).
// The helpers below read them with the same truthiness rules the provider's own clients rely on.

// truthy reports whether v counts as a present value: nil, false, 0, NaN and "" do not.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0 && !math.IsNaN(value)
	case string:
		return value != ""
	default:
		return true
	}
}

// get walks nested objects and returns the value at path, if every step exists.
func get(v any, path ...string) mo.Option[any] {
	current := v
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return mo.None[any]()
		}
		next, ok := obj[key]
		if !ok {
			return mo.None[any]()
		}
		current = next
	}
	return mo.Some(current)
}

// firstTruthy returns the first truthy field of obj among keys.
func firstTruthy(obj any, keys ...string) mo.Option[any] {
	for _, key := range keys {
		if value, ok := get(obj, key).Get(); ok && truthy(value) {
			return mo.Some(value)
		}
	}
	return mo.None[any]()
}

// stringOf renders a scalar the way it would be interpolated into a string.
// Objects and arrays render as empty.
func stringOf(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// firstString is firstTruthy rendered with stringOf, or fallback when nothing is present.
func firstString(obj any, fallback string, keys ...string) string {
	if value, ok := firstTruthy(obj, keys...).Get(); ok {
		return stringOf(value)
	}
	return fallback
}

// numberOf converts numbers and numeric strings.
func numberOf(v any) mo.Option[float64] {
	switch value := v.(type) {
	case float64:
		return mo.Some(value)
	case string:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return mo.Some(f)
		}
	}
	return mo.None[float64]()
}

func asArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}
