package encoding

// Prop readers for DecodeProps implementations.
//
// msgpack decodes wire integers into the smallest Go type that fits, so
// a plain type assertion on int misses most values. These helpers
// normalize what the codec can hand back.

// Int reads an integer prop, accepting any integer type the decoder
// may produce.
func Int(data map[string]any, key string) (int, bool) {
	switch v := data[key].(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return 0, false
	}
}

// String reads a string prop.
func String(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}

// Bool reads a boolean prop.
func Bool(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}
