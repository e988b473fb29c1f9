package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit/pkg/validator"
)

func TestMinLen(t *testing.T) {
	rule := validator.MinLen("password", validator.KindText, 5)

	t.Run("passes at and above the bound", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"password": "12345"}))
		assert.Nil(t, rule.Eval(validator.Values{"password": "123456"}))
	})

	t.Run("fails below the bound", func(t *testing.T) {
		verr := rule.Eval(validator.Values{"password": "1234"})
		require.NotNil(t, verr)
		assert.Equal(t, "must be at least 5 characters long", verr.Message)
		assert.Equal(t, "validation.min_length", verr.TranslationKey)
		assert.Equal(t, map[string]any{"field": "password", "min": 5}, verr.TranslationValues)
	})

	t.Run("fails for absent value", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{}))
		assert.NotNil(t, rule.Eval(validator.Values{"password": nil}))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"password": "пароль"}))
	})

	t.Run("measures the string representation of numbers", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"password": 12345}))
		assert.NotNil(t, rule.Eval(validator.Values{"password": 123}))
	})
}

func TestMaxLen(t *testing.T) {
	rule := validator.MaxLen("username", validator.KindText, 5)

	t.Run("passes at and below the bound", func(t *testing.T) {
		assert.Nil(t, rule.Eval(validator.Values{"username": "12345"}))
		assert.Nil(t, rule.Eval(validator.Values{"username": "1234"}))
	})

	t.Run("fails above the bound", func(t *testing.T) {
		verr := rule.Eval(validator.Values{"username": "123456"})
		require.NotNil(t, verr)
		assert.Equal(t, "validation.max_length", verr.TranslationKey)
		assert.Equal(t, 5, verr.TranslationValues["max"])
	})

	t.Run("fails for absent value", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{}))
	})
}

func TestLenBetween(t *testing.T) {
	rule := validator.LenBetween("code", validator.KindText, 3, 6)

	t.Run("passes inside the inclusive range", func(t *testing.T) {
		for _, v := range []string{"abc", "abcd", "abcde", "abcdef"} {
			assert.Nil(t, rule.Eval(validator.Values{"code": v}), v)
		}
	})

	t.Run("fails outside the range", func(t *testing.T) {
		for _, v := range []string{"ab", "abcdefg"} {
			verr := rule.Eval(validator.Values{"code": v})
			require.NotNil(t, verr, v)
			assert.Equal(t, "must be between 3 and 6 characters long", verr.Message)
			assert.Equal(t, "validation.length_between", verr.TranslationKey)
		}
	})

	t.Run("fails for absent value", func(t *testing.T) {
		assert.NotNil(t, rule.Eval(validator.Values{}))
	})
}
