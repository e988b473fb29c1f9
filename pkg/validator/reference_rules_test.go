package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit/pkg/validator"
)

func TestMatchesField(t *testing.T) {
	rule := validator.MatchesField("confirm", validator.KindText, "password")

	t.Run("passes when values match", func(t *testing.T) {
		vals := validator.Values{"password": "secret1", "confirm": "secret1"}
		assert.Nil(t, rule.Eval(vals))
	})

	t.Run("fails when values differ", func(t *testing.T) {
		vals := validator.Values{"password": "secret1", "confirm": "secret2"}
		verr := rule.Eval(vals)
		require.NotNil(t, verr)
		assert.Equal(t, "confirm", verr.Field)
		assert.Equal(t, "must match the password field", verr.Message)
		assert.Equal(t, "validation.match_field", verr.TranslationKey)
		assert.Equal(t, "password", verr.TranslationValues["reference"])
	})

	t.Run("fails when either side is missing", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{"confirm": "secret1"}))
		assert.NotNil(t, rule.Eval(validator.Values{"password": "secret1"}))
	})
}

func TestMinLenMatchingField(t *testing.T) {
	rule := validator.MinLenMatchingField("confirm", validator.KindText, 8, "password")

	t.Run("passes when long enough and matching", func(t *testing.T) {
		vals := validator.Values{"password": "longsecret", "confirm": "longsecret"}
		assert.Nil(t, rule.Eval(vals))
	})

	t.Run("length failure reported before mismatch", func(t *testing.T) {
		vals := validator.Values{"password": "longsecret", "confirm": "short"}
		verr := rule.Eval(vals)
		require.NotNil(t, verr)
		assert.Equal(t, "validation.min_length", verr.TranslationKey)
	})

	t.Run("mismatch reported when length passes", func(t *testing.T) {
		vals := validator.Values{"password": "longsecret", "confirm": "otherlong"}
		verr := rule.Eval(vals)
		require.NotNil(t, verr)
		assert.Equal(t, "validation.match_field", verr.TranslationKey)
	})
}

func TestGreaterThanFieldIf(t *testing.T) {
	rule := validator.GreaterThanFieldIf("maxAge", validator.KindNumber, "minAge")

	t.Run("passes when strictly greater", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"minAge": 18, "maxAge": 19}))
	})

	t.Run("fails when equal", func(t *testing.T) {
		verr := rule.Eval(validator.Values{"minAge": 18, "maxAge": 18})
		require.NotNil(t, verr)
		assert.Equal(t, "must be greater than minAge", verr.Message)
		assert.Equal(t, "validation.greater_than_field", verr.TranslationKey)
	})

	t.Run("fails when less", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{"minAge": 18, "maxAge": 10}))
	})

	t.Run("fails when reference is missing or non-numeric", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{"maxAge": 30}))
		assert.NotNil(t, rule.Eval(validator.Values{"minAge": "n/a", "maxAge": 30}))
	})

	t.Run("valid while a condition is unmet", func(t *testing.T) {
		gated := validator.GreaterThanFieldIf("maxAge", validator.KindNumber, "minAge",
			validator.When("hasRange", true))

		assert.Nil(t, gated.Eval(validator.Values{"hasRange": false, "minAge": 18, "maxAge": 5}))
		assert.NotNil(t, gated.Eval(validator.Values{"hasRange": true, "minAge": 18, "maxAge": 5}))
	})
}

func TestGreaterThanFieldWithinLimitIf(t *testing.T) {
	rule := validator.GreaterThanFieldWithinLimitIf("maxAge", validator.KindNumber, "minAge", 65)

	t.Run("passes between reference and limit", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"minAge": 18, "maxAge": 40}))
		assert.Nil(t, rule.Eval(validator.Values{"minAge": 18, "maxAge": 65}))
	})

	t.Run("reports reference violation when not strictly greater", func(t *testing.T) {
		verr := rule.Eval(validator.Values{"minAge": 18, "maxAge": 18})
		require.NotNil(t, verr)
		assert.Equal(t, "validation.greater_than_field", verr.TranslationKey)
	})

	t.Run("reports ceiling violation only when reference check passes", func(t *testing.T) {
		verr := rule.Eval(validator.Values{"minAge": 18, "maxAge": 70})
		require.NotNil(t, verr)
		assert.Equal(t, "validation.max", verr.TranslationKey)
		assert.NotEqual(t, "validation.greater_than_field", verr.TranslationKey)
	})

	t.Run("reference violation takes priority when both checks would fail", func(t *testing.T) {
		// 70 both fails the ceiling and, with minAge 80, the reference check;
		// only the reference failure surfaces. Contract, see doc.go.
		verr := rule.Eval(validator.Values{"minAge": 80, "maxAge": 70})
		require.NotNil(t, verr)
		assert.Equal(t, "validation.greater_than_field", verr.TranslationKey)
	})

	t.Run("valid while a condition is unmet", func(t *testing.T) {
		gated := validator.GreaterThanFieldWithinLimitIf("maxAge", validator.KindNumber, "minAge", 65,
			validator.When("hasRange", true))

		assert.Nil(t, gated.Eval(validator.Values{"hasRange": false, "minAge": 18, "maxAge": 99}))
	})
}
