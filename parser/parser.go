// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the two-stage WebIDL front end: a sticky
// regex tokeniser and a hand-written recursive-descent parser that
// turns the token stream into a tree of definitions. The tree keeps
// all trivia, so clients can reproduce the source byte for byte.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

// sourceParser owns all mutable parse state: the token cursor, the
// name registry and the current-definition reference used to enrich
// diagnostics. None of it escapes a Parse call.
type sourceParser struct {
	*cursor
	registry *linkedhashmap.Map
	current  currentRef
}

// currentRef names the definition under construction, if any.
type currentRef struct {
	kind string
	name string
}

// Parse turns WebIDL source into its definition list, terminated by an
// eof node. On failure it returns a *ParseError; no partial tree is
// produced.
func Parse(input string) (defs []ast.Definition, err error) {
	T().P("length", strconv.Itoa(len(input))).Debugf("parsing WebIDL source")
	tokens, err := Tokenise(input)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	p := &sourceParser{
		cursor:   newCursor(tokens),
		registry: linkedhashmap.New(),
	}
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			T().Errorf("parse error: %s", perr.Message)
			defs = nil
			err = perr
		}
	}()
	defs = p.parseDefinitions()
	T().P("definitions", strconv.Itoa(len(defs)-1)).Debugf("parse complete")
	return defs, nil
}

// fail raises a ParseError, unwinding to the Parse entry. The message
// is suffixed with the current definition, when one is under
// construction, and up to five upcoming tokens are captured verbatim.
func (p *sourceParser) fail(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if p.current.kind != "" {
		message = fmt.Sprintf("%s, inside `%s %s`", message, p.current.kind, p.current.name)
	}
	rest := p.tokens[p.position:]
	if len(rest) > 5 {
		rest = rest[:5]
	}
	var input strings.Builder
	for _, t := range rest {
		input.WriteString(t.Trivia)
		input.WriteString(t.Value)
	}
	panic(&ParseError{
		Message: message,
		Line:    p.line,
		Input:   input.String(),
		Tokens:  append([]token.Token(nil), rest...),
	})
}

// expect consumes a token of the given kind or raises with what is
// missing.
func (p *sourceParser) expect(kind token.Kind, missing string) *token.Token {
	t := p.consume(kind)
	if t == nil {
		p.fail("%s", missing)
	}
	return t
}

// unescape strips the single leading underscore that lets identifiers
// spell reserved words.
func unescape(identifier string) string {
	return strings.TrimPrefix(identifier, "_")
}

// register records a non-partial top-level name, raising if the
// unescaped name was already seen.
func (p *sourceParser) register(name, kind string) {
	if prior, ok := p.registry.Get(name); ok {
		p.fail("name %q of type %q was already seen", name, prior.(string))
	}
	p.registry.Put(name, kind)
}

// beginDefinition registers the definition and makes it current for
// diagnostics. Partial definitions skip registration.
func (p *sourceParser) beginDefinition(name *token.Token, kind string, partial bool) {
	unescaped := unescape(name.Value)
	if !partial {
		p.register(unescaped, kind)
	}
	p.current = currentRef{kind: kind, name: unescaped}
	T().P("name", unescaped).Debugf("parsing %s", kind)
}

// parseDefinitions is the root production: extended attributes and one
// definition, repeated, with the terminal eof node appended.
func (p *sourceParser) parseDefinitions() []ast.Definition {
	var defs []ast.Definition
	for {
		p.current = currentRef{}
		extAttrs := p.parseExtendedAttrs()
		def := p.parseDefinition(extAttrs)
		if def == nil {
			if extAttrs != nil {
				p.fail("Stray extended attributes")
			}
			break
		}
		defs = append(defs, def)
	}
	eof := p.consume(token.EOF)
	if eof == nil {
		p.fail("Unrecognised tokens")
	}
	return append(defs, &ast.Eof{Trivia: eof.Trivia})
}

// parseDefinition matches one top-level construct, or nothing.
func (p *sourceParser) parseDefinition(extAttrs *ast.ExtendedAttributes) ast.Definition {
	if d := p.parseCallback(extAttrs); d != nil {
		return d
	}
	if d := p.parseInterfaceLike(extAttrs, nil); d != nil {
		return d
	}
	if d := p.parsePartial(extAttrs); d != nil {
		return d
	}
	if d := p.parseDictionary(extAttrs, nil); d != nil {
		return d
	}
	if d := p.parseEnum(extAttrs); d != nil {
		return d
	}
	if d := p.parseTypedef(extAttrs); d != nil {
		return d
	}
	if d := p.parseIncludes(extAttrs); d != nil {
		return d
	}
	if d := p.parseImplements(extAttrs); d != nil {
		return d
	}
	if d := p.parseNamespace(extAttrs, nil); d != nil {
		return d
	}
	return nil
}
