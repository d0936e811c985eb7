// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

// parseTypeWithExtAttrs matches `[ext attrs] type`. Returns nothing if
// no type follows; speculative callers roll the attributes back too.
func (p *sourceParser) parseTypeWithExtAttrs(role string) *ast.Type {
	extAttrs := p.parseExtendedAttrs()
	typ := p.parseType(role)
	if typ == nil {
		return nil
	}
	typ.ExtAttrs = extAttrs
	return typ
}

func (p *sourceParser) parseType(role string) *ast.Type {
	if typ := p.parseSingleType(role); typ != nil {
		return typ
	}
	return p.parseUnionType(role)
}

// parseSingleType matches a generic, a primitive or a named type.
func (p *sourceParser) parseSingleType(role string) *ast.Type {
	if typ := p.parseGenericType(role); typ != nil {
		return typ
	}
	if typ := p.parsePrimitiveType(role); typ != nil {
		return p.parseTypeSuffix(typ)
	}
	if typ := p.parseIdentType(role); typ != nil {
		return p.parseTypeSuffix(typ)
	}
	return nil
}

// parseGenericType matches sequence, record, FrozenArray and Promise
// types with their bracketed type arguments.
func (p *sourceParser) parseGenericType(role string) *ast.Type {
	base := p.consume("FrozenArray", "Promise", "sequence", "record")
	if base == nil {
		return nil
	}
	typ := &ast.Type{
		Role:     role,
		Generic:  base.Value,
		BaseName: base.Value,
		Name:     base.Value,
		Trivia:   ast.Trivia{"base": base.Trivia},
	}
	open := p.expect("<", "No opening bracket after "+base.Value)
	typ.Trivia["open"] = open.Trivia
	switch base.Value {
	case "Promise":
		inner := p.parseReturnType()
		if inner == nil {
			p.fail("Missing Promise subtype")
		}
		typ.Subtypes = []*ast.Type{inner}
	case "sequence", "FrozenArray":
		inner := p.parseTypeWithExtAttrs(role)
		if inner == nil {
			p.fail("Missing %s subtype", base.Value)
		}
		typ.Subtypes = []*ast.Type{inner}
	case "record":
		key := p.consume("ByteString", "DOMString", "USVString")
		if key == nil {
			p.fail("Record key must be one of: ByteString, DOMString, USVString")
		}
		keyType := &ast.Type{
			Role:        role,
			BaseName:    key.Value,
			Name:        key.Value,
			EscapedName: key.Value,
			Trivia:      ast.Trivia{"base": key.Trivia},
		}
		comma := p.expect(",", "Missing comma after record key type")
		keyType.Separator = ","
		keyType.Trivia["separator"] = comma.Trivia
		value := p.parseTypeWithExtAttrs(role)
		if value == nil {
			p.fail("Missing record value type")
		}
		typ.Subtypes = []*ast.Type{keyType, value}
	}
	close := p.expect(">", "Missing closing bracket after "+base.Value)
	typ.Trivia["close"] = close.Trivia
	return p.parseTypeSuffix(typ)
}

// parsePrimitiveType matches the numeric and boolean primitives,
// including the two-word unsigned/unrestricted forms and long long.
func (p *sourceParser) parsePrimitiveType(role string) *ast.Type {
	if prefix := p.consume("unsigned"); prefix != nil {
		base := p.consume("short", "long")
		if base == nil {
			p.fail("Unsigned type must accompany short or long")
		}
		typ := prefixedType(role, prefix, base)
		p.parseLongPostfix(typ, base)
		return typ
	}
	if prefix := p.consume("unrestricted"); prefix != nil {
		base := p.consume("float", "double")
		if base == nil {
			p.fail("Unrestricted type must accompany float or double")
		}
		return prefixedType(role, prefix, base)
	}
	base := p.consume("short", "long", "byte", "octet", "boolean", "float", "double")
	if base == nil {
		return nil
	}
	typ := &ast.Type{
		Role:     role,
		BaseName: base.Value,
		Name:     base.Value,
		Trivia:   ast.Trivia{"base": base.Trivia},
	}
	p.parseLongPostfix(typ, base)
	return typ
}

func prefixedType(role string, prefix, base *token.Token) *ast.Type {
	return &ast.Type{
		Role:     role,
		Prefix:   prefix.Value,
		BaseName: base.Value,
		Name:     prefix.Value + " " + base.Value,
		Trivia:   ast.Trivia{"prefix": prefix.Trivia, "base": base.Trivia},
	}
}

func (p *sourceParser) parseLongPostfix(typ *ast.Type, base *token.Token) {
	if base.Value != "long" {
		return
	}
	if postfix := p.consume("long"); postfix != nil {
		typ.Postfix = postfix.Value
		typ.Name += " " + postfix.Value
		typ.Trivia["postfix"] = postfix.Trivia
	}
}

// parseIdentType matches a named type: an identifier or one of the
// built-in string types.
func (p *sourceParser) parseIdentType(role string) *ast.Type {
	base := p.consume(token.Identifier, "ByteString", "DOMString", "USVString")
	if base == nil {
		return nil
	}
	unescaped := unescape(base.Value)
	return &ast.Type{
		Role:        role,
		BaseName:    unescaped,
		Name:        unescaped,
		EscapedName: base.Value,
		Trivia:      ast.Trivia{"base": base.Trivia},
	}
}

// parseUnionType matches a parenthesised union of at least two types
// separated by `or`.
func (p *sourceParser) parseUnionType(role string) *ast.Type {
	open := p.consume("(")
	if open == nil {
		return nil
	}
	typ := &ast.Type{
		Role:   role,
		Union:  true,
		Trivia: ast.Trivia{"open": open.Trivia},
	}
	for {
		member := p.parseTypeWithExtAttrs(role)
		if member == nil {
			p.fail("No type after open parenthesis or 'or' in union type")
		}
		typ.Subtypes = append(typ.Subtypes, member)
		or := p.consume("or")
		if or == nil {
			break
		}
		member.Separator = "or"
		member.Trivia["separator"] = or.Trivia
	}
	close := p.expect(")", "Unterminated union type")
	typ.Trivia["close"] = close.Trivia
	if len(typ.Subtypes) < 2 {
		p.fail("At least two types are expected in a union type but found %d", len(typ.Subtypes))
	}
	return p.parseTypeSuffix(typ)
}

// parseTypeSuffix applies the optional `?`, rejecting nullable
// Promise, nullable any and double nullability.
func (p *sourceParser) parseTypeSuffix(typ *ast.Type) *ast.Type {
	if q := p.consume("?"); q != nil {
		if typ.Generic == "Promise" {
			p.fail("Promise type cannot be nullable")
		}
		if typ.Name == "any" {
			p.fail("Type `any` cannot be nullable")
		}
		typ.Nullable = true
		typ.Trivia["nullable"] = q.Trivia
	}
	if p.probe("?") {
		p.fail("Can't nullable more than once")
	}
	return typ
}

// parseReturnType matches `void` or any type.
func (p *sourceParser) parseReturnType() *ast.Type {
	if v := p.consume("void"); v != nil {
		return &ast.Type{
			Role:     "return-type",
			BaseName: "void",
			Name:     "void",
			Trivia:   ast.Trivia{"base": v.Trivia},
		}
	}
	return p.parseType("return-type")
}

// parseConstType matches the narrower type grammar of const members:
// a primitive or a named type, optionally nullable, never generic.
func (p *sourceParser) parseConstType() *ast.Type {
	typ := p.parsePrimitiveType("const-type")
	if typ == nil {
		base := p.consume(token.Identifier)
		if base == nil {
			p.fail("No type for const")
		}
		unescaped := unescape(base.Value)
		typ = &ast.Type{
			Role:        "const-type",
			BaseName:    unescaped,
			Name:        unescaped,
			EscapedName: base.Value,
			Trivia:      ast.Trivia{"base": base.Trivia},
		}
	}
	return p.parseTypeSuffix(typ)
}
