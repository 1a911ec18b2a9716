package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateFixture struct {
	Name string `validate:"required"`
	Path string `validate:"omitempty,startswith=/"`
	URL  string `validate:"omitempty,url"`
	Max  int    `validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	t.Run("sanity", func(t *testing.T) {
		assert.NoError(t, Validate(validateFixture{Name: "x", Path: "/a", URL: "https://example.com"}))
	})

	t.Run("required", func(t *testing.T) {
		err := Validate(validateFixture{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name: required field missing")
	})

	t.Run("startswith", func(t *testing.T) {
		err := Validate(validateFixture{Name: "x", Path: "no-slash"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Path: must start with '/'")
	})

	t.Run("url", func(t *testing.T) {
		err := Validate(validateFixture{Name: "x", URL: "not a url"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "URL: invalid url: not a url")
	})

	t.Run("gte", func(t *testing.T) {
		err := Validate(validateFixture{Name: "x", Max: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Max: value must be >= 0")
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		err := Validate(validateFixture{Path: "bad", Max: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "; ")
	})
}
