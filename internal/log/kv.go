package log

import "sort"

// KV holds the key-value pairs attached to one log entry.
type KV map[string]any

// kvToArgs flattens the first KV map into the alternating key, value slice
// slog expects. Keys are sorted so entries are stable across runs.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	keys := make([]string, 0, len(keyVals[0]))
	for key := range keyVals[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, keyVals[0][key])
	}
	return args
}
