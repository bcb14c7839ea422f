//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form and applies muts.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets or, for a nil value, deletes a field. Dotted paths reach into
// nested objects and arrays: "items.0.quantity".
func Field(path string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		var cur any = m
		for _, k := range keys[:len(keys)-1] {
			cur = child(cur, k)
			if cur == nil {
				return
			}
		}
		last := keys[len(keys)-1]
		switch node := cur.(type) {
		case map[string]any:
			if value == nil {
				delete(node, last)
			} else {
				node[last] = value
			}
		case []any:
			if i, err := strconv.Atoi(last); err == nil && i < len(node) {
				node[i] = value
			}
		}
	}
}

func child(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key]
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return nil
		}
		return n[i]
	}
	return nil
}
