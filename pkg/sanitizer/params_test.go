package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit-go/formkit/pkg/sanitizer"
)

func TestCleanParams(t *testing.T) {
	t.Run("trims strings and drops empty values", func(t *testing.T) {
		params := map[string]any{
			"name":  "  John  ",
			"email": "",
			"blank": "   ",
			"nope":  nil,
			"age":   30,
		}

		cleaned := sanitizer.CleanParams(params)
		assert.Equal(t, map[string]any{
			"name": "John",
			"age":  30,
		}, cleaned)
	})

	t.Run("recurses into nested maps", func(t *testing.T) {
		params := map[string]any{
			"filter": map[string]any{
				"status": " active ",
				"owner":  "",
			},
			"empty": map[string]any{
				"a": nil,
				"b": "  ",
			},
		}

		cleaned := sanitizer.CleanParams(params)
		assert.Equal(t, map[string]any{
			"filter": map[string]any{"status": "active"},
		}, cleaned)
	})

	t.Run("prunes slices and drops them when empty", func(t *testing.T) {
		params := map[string]any{
			"tags":  []string{" go ", "", "forms"},
			"mixed": []any{" x ", nil, 3},
			"gone":  []any{nil, "  "},
		}

		cleaned := sanitizer.CleanParams(params)
		assert.Equal(t, map[string]any{
			"tags":  []string{"go", "forms"},
			"mixed": []any{"x", 3},
		}, cleaned)
	})

	t.Run("keeps booleans including false", func(t *testing.T) {
		cleaned := sanitizer.CleanParams(map[string]any{"active": false})
		assert.Equal(t, map[string]any{"active": false}, cleaned)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		params := map[string]any{
			"name":   "  John  ",
			"nested": map[string]any{"a": " b "},
		}

		_ = sanitizer.CleanParams(params)
		assert.Equal(t, "  John  ", params["name"])
		assert.Equal(t, " b ", params["nested"].(map[string]any)["a"])
	})

	t.Run("nil input returns nil", func(t *testing.T) {
		assert.Nil(t, sanitizer.CleanParams(nil))
	})
}
