package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlkit/webidl2/token"
)

func TestCursorLineCounting(t *testing.T) {
	tokens, err := Tokenise("interface\n\nFoo\n{")
	require.NoError(t, err)
	c := newCursor(tokens)
	assert.Equal(t, 1, c.line)

	require.NotNil(t, c.consume("interface"))
	assert.Equal(t, 1, c.line)

	require.NotNil(t, c.consume(token.Identifier))
	assert.Equal(t, 3, c.line)

	mark := c.position
	require.NotNil(t, c.consume("{"))
	assert.Equal(t, 4, c.line)

	c.unconsume(mark)
	assert.Equal(t, 3, c.line)
	assert.True(t, c.probe("{"))
}

func TestCursorProbeAndConsume(t *testing.T) {
	tokens, err := Tokenise("( 42 )")
	require.NoError(t, err)
	c := newCursor(tokens)

	assert.True(t, c.probe("("))
	assert.False(t, c.probe(")"))
	assert.Nil(t, c.consume(")"))
	require.NotNil(t, c.consume("("))

	value, trivia, ok := c.consumeUntyped(token.Integer, token.Float)
	require.True(t, ok)
	assert.Equal(t, "42", value)
	assert.Equal(t, " ", trivia)
}
