// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

// bodyKind selects the member set admitted by a container body.
type bodyKind int

const (
	bodyInterface bodyKind = iota // full member set, inherit attributes
	bodyMixin                     // no statics, no iterables, regular operations
	bodyNamespace                 // readonly attributes and regular operations only
)

var argumentNameKinds = func() []token.Kind {
	kinds := []token.Kind{token.Identifier}
	for _, kw := range token.ArgumentNameKeywords {
		kinds = append(kinds, token.Kind(kw))
	}
	return kinds
}()

// parseInterfaceMembers runs the shared body loop: optional extended
// attributes, then the first member production that matches.
func (p *sourceParser) parseInterfaceMembers(body bodyKind) []ast.Member {
	var members []ast.Member
	for !p.probe("}") {
		extAttrs := p.parseExtendedAttrs()
		member := p.parseMember(body)
		if member == nil {
			p.fail("Unknown member")
		}
		setMemberExtAttrs(member, extAttrs)
		members = append(members, member)
	}
	return members
}

func setMemberExtAttrs(member ast.Member, extAttrs *ast.ExtendedAttributes) {
	switch m := member.(type) {
	case *ast.Const:
		m.ExtAttrs = extAttrs
	case *ast.Attribute:
		m.ExtAttrs = extAttrs
	case *ast.Operation:
		m.ExtAttrs = extAttrs
	case *ast.IterableLike:
		m.ExtAttrs = extAttrs
	}
}

func (p *sourceParser) parseMember(body bodyKind) ast.Member {
	if body == bodyNamespace {
		if attr := p.parseAttribute(false); attr != nil {
			if !attr.Readonly {
				p.fail("Attributes in namespaces must be readonly")
			}
			return attr
		}
		if op := p.parseOperation(true); op != nil {
			return op
		}
		return nil
	}
	if c := p.parseConst(); c != nil {
		return c
	}
	if body == bodyInterface {
		if m := p.parseStaticMember(); m != nil {
			return m
		}
	}
	if m := p.parseStringifier(); m != nil {
		return m
	}
	if body == bodyInterface {
		if m := p.parseIterableLike(); m != nil {
			return m
		}
	}
	if m := p.parseAttribute(body == bodyInterface); m != nil {
		return m
	}
	if m := p.parseOperation(body == bodyMixin); m != nil {
		return m
	}
	return nil
}

func (p *sourceParser) parseConst() *ast.Const {
	base := p.consume("const")
	if base == nil {
		return nil
	}
	typ := p.parseConstType()
	name := p.expect(token.Identifier, "No name for const")
	assign := p.expect("=", "No value assignment for const")
	value := p.parseConstValue()
	if value == nil {
		p.fail("No value for const")
	}
	term := p.expect(";", "Unterminated const")
	return &ast.Const{
		Base: makeBase(nil, ast.Trivia{
			"base":        base.Trivia,
			"name":        name.Trivia,
			"assign":      assign.Trivia,
			"termination": term.Trivia,
		}),
		IDLType:     typ,
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Value:       value,
	}
}

// parseStaticMember wraps an attribute or operation in a `static`
// marker.
func (p *sourceParser) parseStaticMember() ast.Member {
	static := p.consume("static")
	if static == nil {
		return nil
	}
	if attr := p.parseAttribute(false); attr != nil {
		attr.Special = "static"
		attr.Trivia["special"] = static.Trivia
		return attr
	}
	if op := p.parseOperation(true); op != nil {
		op.Special = "static"
		op.Trivia["special"] = static.Trivia
		return op
	}
	p.fail("No body in static member")
	return nil
}

// parseStringifier handles `stringifier;` standalone as well as
// stringifier attributes and operations.
func (p *sourceParser) parseStringifier() ast.Member {
	stringifier := p.consume("stringifier")
	if stringifier == nil {
		return nil
	}
	if term := p.consume(";"); term != nil {
		return &ast.Operation{
			Base: makeBase(nil, ast.Trivia{
				"special":     stringifier.Trivia,
				"termination": term.Trivia,
			}),
			Special: "stringifier",
		}
	}
	if attr := p.parseAttribute(false); attr != nil {
		attr.Special = "stringifier"
		attr.Trivia["special"] = stringifier.Trivia
		return attr
	}
	if op := p.parseOperation(true); op != nil {
		op.Special = "stringifier"
		op.Trivia["special"] = stringifier.Trivia
		return op
	}
	p.fail("Unterminated stringifier")
	return nil
}

// parseAttribute is speculative: it rolls back if the `attribute`
// keyword never arrives.
func (p *sourceParser) parseAttribute(allowInherit bool) *ast.Attribute {
	start := p.position
	var inherit *token.Token
	if allowInherit {
		inherit = p.consume("inherit")
	}
	readonly := p.consume("readonly")
	base := p.consume("attribute")
	if base == nil {
		p.unconsume(start)
		return nil
	}
	typ := p.parseTypeWithExtAttrs("attribute-type")
	if typ == nil {
		p.fail("No type in attribute")
	}
	if typ.Generic == "sequence" || typ.Generic == "record" {
		p.fail("Attributes cannot accept %s types", typ.Generic)
	}
	name := p.expect(token.Identifier, "No name in attribute")
	term := p.expect(";", "Unterminated attribute")
	trivia := ast.Trivia{"base": base.Trivia, "name": name.Trivia, "termination": term.Trivia}
	if inherit != nil {
		trivia["inherit"] = inherit.Trivia
	}
	if readonly != nil {
		trivia["readonly"] = readonly.Trivia
	}
	return &ast.Attribute{
		Base:        makeBase(nil, trivia),
		Inherit:     inherit != nil,
		Readonly:    readonly != nil,
		IDLType:     typ,
		Name:        unescape(name.Value),
		EscapedName: name.Value,
	}
}

// parseOperation matches an operation; regular operations admit no
// getter/setter/deleter marker. Returns nothing when no return type
// opens the production.
func (p *sourceParser) parseOperation(regular bool) *ast.Operation {
	var special *token.Token
	if !regular {
		special = p.consume("getter", "setter", "deleter")
	}
	ret := p.parseReturnType()
	if ret == nil {
		if special != nil {
			p.fail("Missing return type in %s operation", special.Value)
		}
		return nil
	}
	name := p.consume(token.Identifier)
	open := p.expect("(", "Invalid operation")
	args := p.parseArgumentList()
	close := p.expect(")", "Unterminated operation arguments")
	term := p.expect(";", "Unterminated operation")
	trivia := ast.Trivia{"open": open.Trivia, "close": close.Trivia, "termination": term.Trivia}
	op := &ast.Operation{
		Base:       makeBase(nil, trivia),
		ReturnType: ret,
		Arguments:  args,
	}
	if special != nil {
		op.Special = special.Value
		trivia["special"] = special.Trivia
	}
	if name != nil {
		op.Name = unescape(name.Value)
		op.EscapedName = name.Value
		trivia["name"] = name.Trivia
	}
	return op
}

// parseIterableLike is speculative: a leading `readonly` may belong to
// an attribute instead.
func (p *sourceParser) parseIterableLike() *ast.IterableLike {
	start := p.position
	readonly := p.consume("readonly")
	base := p.consume("iterable", "legacyiterable", "maplike", "setlike")
	if base == nil {
		p.unconsume(start)
		return nil
	}
	decl := base.Value
	if readonly != nil && decl != "maplike" && decl != "setlike" {
		p.fail("Only maplike and setlike declarations may be readonly")
	}
	open := p.expect("<", "Missing type arguments in "+decl+" declaration")
	first := p.parseTypeWithExtAttrs("")
	if first == nil {
		p.fail("Missing type argument in %s declaration", decl)
	}
	types := []*ast.Type{first}
	if decl == "maplike" {
		comma := p.expect(",", "Missing second type argument in maplike declaration")
		first.Separator = ","
		first.Trivia["separator"] = comma.Trivia
		second := p.parseTypeWithExtAttrs("")
		if second == nil {
			p.fail("Missing second type argument in maplike declaration")
		}
		types = append(types, second)
	} else if p.probe(",") {
		p.fail("A %s declaration accepts exactly one type argument", decl)
	}
	close := p.expect(">", "Unterminated "+decl+" declaration")
	term := p.expect(";", "Missing semicolon after "+decl+" declaration")
	trivia := ast.Trivia{
		"base":        base.Trivia,
		"open":        open.Trivia,
		"close":       close.Trivia,
		"termination": term.Trivia,
	}
	if readonly != nil {
		trivia["readonly"] = readonly.Trivia
	}
	return &ast.IterableLike{
		Base:     makeBase(nil, trivia),
		Decl:     decl,
		Readonly: readonly != nil,
		IDLTypes: types,
	}
}

// parseArgument is speculative: everything consumed is handed back
// unless both a type and a name are found. Argument names may be any
// of the argument-name keywords.
func (p *sourceParser) parseArgument() *ast.Argument {
	start := p.position
	extAttrs := p.parseExtendedAttrs()
	optional := p.consume("optional")
	typ := p.parseTypeWithExtAttrs("argument-type")
	if typ == nil {
		p.unconsume(start)
		return nil
	}
	var variadic *token.Token
	if optional == nil {
		variadic = p.consume("...")
	}
	name := p.consume(argumentNameKinds...)
	if name == nil {
		p.unconsume(start)
		return nil
	}
	trivia := ast.Trivia{"name": name.Trivia}
	if optional != nil {
		trivia["optional"] = optional.Trivia
	}
	if variadic != nil {
		trivia["variadic"] = variadic.Trivia
	}
	arg := &ast.Argument{
		Base:        makeBase(extAttrs, trivia),
		Optional:    optional != nil,
		Variadic:    variadic != nil,
		IDLType:     typ,
		Name:        unescape(name.Value),
		EscapedName: name.Value,
	}
	if optional != nil {
		arg.Default = p.parseDefault()
	}
	return arg
}

// parseArgumentList matches comma-separated arguments; a trailing
// comma is an error.
func (p *sourceParser) parseArgumentList() []*ast.Argument {
	first := p.parseArgument()
	if first == nil {
		return nil
	}
	args := []*ast.Argument{first}
	for {
		comma := p.consume(",")
		if comma == nil {
			break
		}
		prev := args[len(args)-1]
		prev.Separator = ","
		prev.Trivia["separator"] = comma.Trivia
		next := p.parseArgument()
		if next == nil {
			p.fail("Trailing comma in arguments list")
		}
		args = append(args, next)
	}
	return args
}
