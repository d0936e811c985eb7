// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

// parseExtendedAttrs matches an optional bracketed attribute list.
// Empty brackets and trailing commas are errors.
func (p *sourceParser) parseExtendedAttrs() *ast.ExtendedAttributes {
	open := p.consume("[")
	if open == nil {
		return nil
	}
	list := &ast.ExtendedAttributes{Trivia: ast.Trivia{"open": open.Trivia}}
	for {
		attr := p.parseSimpleExtAttr()
		if attr == nil {
			if len(list.Items) == 0 {
				p.fail("Extended attribute list must not be empty")
			}
			p.fail("Trailing comma in extended attribute list")
		}
		list.Items = append(list.Items, attr)
		comma := p.consume(",")
		if comma == nil {
			break
		}
		attr.Separator = ","
		attr.Trivia["separator"] = comma.Trivia
	}
	close := p.expect("]", "No end of extended attribute list")
	list.Trivia["close"] = close.Trivia
	return list
}

// parseSimpleExtAttr matches one attribute: a name, an optional
// `= rhs` and an optional parenthesised part. With a dangling `=` the
// parenthesised part is an identifier list; otherwise it is an
// argument list.
func (p *sourceParser) parseSimpleExtAttr() *ast.ExtendedAttribute {
	name := p.consume(token.Identifier)
	if name == nil {
		return nil
	}
	attr := &ast.ExtendedAttribute{
		Name:   name.Value,
		Trivia: ast.Trivia{"name": name.Trivia},
	}
	assign := p.consume("=")
	if assign != nil {
		attr.Trivia["assign"] = assign.Trivia
		if rhs := p.consume(token.Identifier, token.Float, token.Integer, token.String); rhs != nil {
			attr.RHS = &ast.ExtAttrRHS{
				Type:   string(rhs.Type),
				Value:  rhs.Value,
				Trivia: ast.Trivia{"value": rhs.Trivia},
			}
		} else if p.probe("(") {
			attr.RHS = p.parseIdentifierList()
		} else {
			p.fail("No right hand side to extended attribute assignment")
		}
	}
	if p.probe("(") && (attr.RHS == nil || attr.RHS.Type != "identifier-list") {
		open := p.consume("(")
		signature := &ast.Signature{Trivia: ast.Trivia{"open": open.Trivia}}
		signature.Arguments = p.parseArgumentList()
		close := p.expect(")", "Unterminated extended attribute arguments")
		signature.Trivia["close"] = close.Trivia
		attr.Signature = signature
	}
	return attr
}

// parseIdentifierList matches the `(a, b, c)` right-hand side form.
func (p *sourceParser) parseIdentifierList() *ast.ExtAttrRHS {
	open := p.consume("(")
	rhs := &ast.ExtAttrRHS{
		Type:   "identifier-list",
		Trivia: ast.Trivia{"open": open.Trivia},
	}
	for {
		id := p.consume(token.Identifier)
		if id == nil {
			p.fail("Expected identifiers but none found")
		}
		item := &ast.RHSItem{Value: id.Value, Trivia: ast.Trivia{"value": id.Trivia}}
		rhs.List = append(rhs.List, item)
		comma := p.consume(",")
		if comma == nil {
			break
		}
		item.Separator = ","
		item.Trivia["separator"] = comma.Trivia
	}
	close := p.expect(")", "Unterminated identifier list")
	rhs.Trivia["close"] = close.Trivia
	return rhs
}
