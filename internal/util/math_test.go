package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	// GIVEN
	min := 0
	max := 100

	// WHEN
	below := Coerce(-5, min, max)
	inside := Coerce(42, min, max)
	above := Coerce(150, min, max)

	// THEN
	assert.Equal(t, 0, below)
	assert.Equal(t, 42, inside)
	assert.Equal(t, 100, above)
}
