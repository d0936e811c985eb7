package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserved(t *testing.T) {
	assert.True(t, Reserved("interface"))
	assert.True(t, Reserved("DOMString"))
	assert.True(t, Reserved("legacyiterable"))
	assert.False(t, Reserved("-Infinity")) // punctuation, not an identifier spelling
	assert.False(t, Reserved("Foo"))
	assert.False(t, Reserved("_interface")) // escaped spelling stays an identifier
}

func TestArgumentNameKeywordsAreReserved(t *testing.T) {
	for _, kw := range ArgumentNameKeywords {
		assert.True(t, Reserved(kw), kw)
	}
}
