// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

// parseConstValue matches a literal: true, false, null, Infinity,
// -Infinity, NaN, an integer or a float. The null and NaN variants
// deliberately carry no payload.
func (p *sourceParser) parseConstValue() *ast.Value {
	if t := p.consume("true", "false"); t != nil {
		return &ast.Value{Type: "boolean", Value: t.Value, Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume("Infinity"); t != nil {
		return &ast.Value{Type: "Infinity", Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume("-Infinity"); t != nil {
		return &ast.Value{Type: "Infinity", Negative: true, Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume("NaN"); t != nil {
		return &ast.Value{Type: "NaN", Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume("null"); t != nil {
		return &ast.Value{Type: "null", Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume(token.Integer); t != nil {
		return &ast.Value{Type: "number", Value: t.Value, Trivia: ast.Trivia{"value": t.Trivia}}
	}
	if t := p.consume(token.Float); t != nil {
		return &ast.Value{Type: "number", Value: t.Value, Trivia: ast.Trivia{"value": t.Trivia}}
	}
	return nil
}

// parseDefault matches `= value` where value is a const value, the
// empty sequence literal `[]` or a quoted string with the quotes
// stripped. Returns nothing when no `=` follows.
func (p *sourceParser) parseDefault() *ast.Value {
	assign := p.consume("=")
	if assign == nil {
		return nil
	}
	var value *ast.Value
	switch {
	case p.probe("["):
		open := p.consume("[")
		close := p.consume("]")
		if close == nil {
			p.fail("Default sequence value must be empty")
		}
		value = &ast.Value{Type: "sequence", Trivia: ast.Trivia{"open": open.Trivia, "close": close.Trivia}}
	case p.probe(token.String):
		str := p.consume(token.String)
		value = &ast.Value{
			Type:   "string",
			Value:  str.Value[1 : len(str.Value)-1],
			Trivia: ast.Trivia{"value": str.Trivia},
		}
	default:
		value = p.parseConstValue()
		if value == nil {
			p.fail("No value for default")
		}
	}
	value.Trivia["assign"] = assign.Trivia
	return value
}
