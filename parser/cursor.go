// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"

	"github.com/idlkit/webidl2/token"
)

// cursor owns a position into the token stream and a running 1-based
// line counter. Productions that may fail record the position on entry
// and roll back with unconsume before a commit point is reached.
type cursor struct {
	tokens   []token.Token
	position int
	line     int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens, line: 1}
}

// probe reports whether the next token has the given kind, without
// side effects.
func (c *cursor) probe(kind token.Kind) bool {
	return c.position < len(c.tokens) && c.tokens[c.position].Type == kind
}

// consume advances past the next token and returns it if its kind is
// one of those given, nil otherwise. The line counter grows by the
// number of newlines in the consumed token's trivia.
func (c *cursor) consume(kinds ...token.Kind) *token.Token {
	if c.position >= len(c.tokens) {
		return nil
	}
	t := &c.tokens[c.position]
	for _, kind := range kinds {
		if t.Type != kind {
			continue
		}
		c.position++
		c.line += strings.Count(t.Trivia, "\n")
		return t
	}
	return nil
}

// consumeUntyped is consume for callers that only need the matched
// spelling and its trivia, keeping full token records out of the tree.
func (c *cursor) consumeUntyped(kinds ...token.Kind) (value, trivia string, ok bool) {
	t := c.consume(kinds...)
	if t == nil {
		return "", "", false
	}
	return t.Value, t.Trivia, true
}

// unconsume rolls the cursor back to a previously saved position,
// decrementing the line counter symmetrically.
func (c *cursor) unconsume(position int) {
	for c.position > position {
		c.position--
		c.line -= strings.Count(c.tokens[c.position].Trivia, "\n")
	}
}
