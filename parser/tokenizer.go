// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/idlkit/webidl2/token"
)

// The lexical rules. Each pattern is anchored with ^ and only ever run
// against the string slice starting at the cursor, so matching is
// sticky: a rule either matches at the cursor or not at all.
var (
	reWhitespace = regexp.MustCompile(`^[\t\n\r ]+`)
	reComment    = regexp.MustCompile(`^(?://.*|/\*(?s:.*?)\*/)`)
	reFloat      = regexp.MustCompile(`^-?(?:(?:[0-9]+\.[0-9]*|[0-9]*\.[0-9]+)(?:[Ee][+-]?[0-9]+)?|[0-9]+[Ee][+-]?[0-9]+)`)
	reInteger    = regexp.MustCompile(`^-?(?:0[Xx][0-9A-Fa-f]+|0[0-7]*|[1-9][0-9]*)`)
	reIdentifier = regexp.MustCompile(`^_?[A-Za-z][0-9A-Za-z_-]*`)
	reString     = regexp.MustCompile(`^"[^"]*"`)
	reOther      = regexp.MustCompile(`^[^\t\n\r 0-9A-Za-z]`)
)

// Tokenise segments input into a stream of classified tokens, each
// carrying the whitespace and comments that preceded it as trivia. The
// stream is terminated by a synthetic eof token holding any residual
// trailing trivia. Unclassifiable bytes become tokens of kind other;
// the returned error fires only if no rule can advance the cursor,
// which would be a bug in the rule table.
func Tokenise(input string) ([]token.Token, error) {
	var tokens []token.Token
	trivia := ""
	pos := 0

	emit := func(kind token.Kind, value string) {
		tokens = append(tokens, token.Token{Type: kind, Value: value, Trivia: trivia})
		trivia = ""
		pos += len(value)
	}

	for pos < len(input) {
		rest := input[pos:]
		c := input[pos]

		if c == '\t' || c == '\n' || c == '\r' || c == ' ' {
			m := reWhitespace.FindString(rest)
			trivia += m
			pos += len(m)
			continue
		}
		if c == '/' {
			if m := reComment.FindString(rest); m != "" {
				trivia += m
				pos += len(m)
				continue
			}
		}

		// Numbers first so that a leading minus binds to the literal;
		// -Infinity falls through to the punctuation rules below.
		if c == '-' || c == '.' || (c >= '0' && c <= '9') {
			if m := reFloat.FindString(rest); m != "" {
				emit(token.Float, m)
				continue
			}
			if m := reInteger.FindString(rest); m != "" {
				emit(token.Integer, m)
				continue
			}
		}

		if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			if m := reIdentifier.FindString(rest); m != "" {
				kind := token.Identifier
				if token.Reserved(m) {
					kind = token.Kind(m)
				}
				emit(kind, m)
				continue
			}
		}

		if c == '"' {
			if m := reString.FindString(rest); m != "" {
				emit(token.String, m)
				continue
			}
		}

		matched := false
		for _, p := range token.Punctuations {
			if strings.HasPrefix(rest, p) {
				emit(token.Kind(p), p)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if m := reOther.FindString(rest); m != "" {
			emit(token.Other, m)
			continue
		}

		return nil, errors.New("Token stream not progressing")
	}

	tokens = append(tokens, token.Token{Type: token.EOF, Trivia: trivia})
	return tokens, nil
}
