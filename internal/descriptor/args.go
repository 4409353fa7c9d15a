package descriptor

import "fmt"

// Args holds converted handler arguments in parameter order.
type Args []any

// Len returns the number of bound arguments.
func (a Args) Len() int {
	return len(a)
}

// Has reports whether position i is bound to something other than Missing.
func (a Args) Has(i int) bool {
	return i >= 0 && i < len(a) && !IsMissing(a[i])
}

// Get returns the raw value at i, or nil when unbound.
func (a Args) Get(i int) any {
	if !a.Has(i) {
		return nil
	}
	return a[i]
}

// String returns the value at i formatted as a string.
func (a Args) String(i int) string {
	v := a.Get(i)
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// Int returns the value at i as an int when it holds any signed or unsigned
// integer width, and ok=false otherwise.
func (a Args) Int(i int) (int, bool) {
	switch n := a.Get(i).(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}

// Float returns the value at i as a float64 when it holds a float.
func (a Args) Float(i int) (float64, bool) {
	switch f := a.Get(i).(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}

// Bool returns the value at i as a bool.
func (a Args) Bool(i int) (bool, bool) {
	b, ok := a.Get(i).(bool)
	return b, ok
}

// Enum returns the value at i as an EnumValue.
func (a Args) Enum(i int) (EnumValue, bool) {
	v, ok := a.Get(i).(EnumValue)
	return v, ok
}
