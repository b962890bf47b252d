// SPDX-License-Identifier: MIT

package camera

// toFloat converts a decoded scalar (YAML/JSON numbers or Go numerics).
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}

// toPair converts a decoded 2-element sequence; a scalar is broadcast when
// broadcast is true.
func toPair(v any, broadcast bool) ([2]float64, bool) {
	if f, ok := toFloat(v); ok {
		if broadcast {
			return [2]float64{f, f}, true
		}

		return [2]float64{}, false
	}
	var items []any
	switch x := v.(type) {
	case [2]float64:
		return x, true
	case []float64:
		for _, f := range x {
			items = append(items, f)
		}
	case []int:
		for _, i := range x {
			items = append(items, i)
		}
	case []any:
		items = x
	default:
		return [2]float64{}, false
	}
	if len(items) != 2 {
		return [2]float64{}, false
	}
	var out [2]float64
	for i, it := range items {
		f, ok := toFloat(it)
		if !ok {
			return [2]float64{}, false
		}
		out[i] = f
	}

	return out, true
}
