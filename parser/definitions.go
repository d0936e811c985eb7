// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/idlkit/webidl2/ast"
	"github.com/idlkit/webidl2/token"
)

func makeBase(extAttrs *ast.ExtendedAttributes, trivia ast.Trivia) ast.Base {
	return ast.Base{ExtAttrs: extAttrs, Trivia: trivia}
}

// parseCallback matches `callback interface ...` or a callback
// function `callback Name = ReturnType (args);`.
func (p *sourceParser) parseCallback(extAttrs *ast.ExtendedAttributes) ast.Definition {
	base := p.consume("callback")
	if base == nil {
		return nil
	}
	if iface := p.consume("interface"); iface != nil {
		return p.parseCallbackInterfaceRest(extAttrs, base, iface)
	}
	name := p.expect(token.Identifier, "No name for callback")
	p.beginDefinition(name, "callback", false)
	assign := p.expect("=", "No assignment in callback")
	ret := p.parseReturnType()
	if ret == nil {
		p.fail("Missing return type in callback")
	}
	open := p.expect("(", "No arguments in callback")
	args := p.parseArgumentList()
	close := p.expect(")", "Unterminated callback arguments")
	term := p.expect(";", "Unterminated callback")
	return &ast.Callback{
		Base: makeBase(extAttrs, ast.Trivia{
			"base":        base.Trivia,
			"name":        name.Trivia,
			"assign":      assign.Trivia,
			"open":        open.Trivia,
			"close":       close.Trivia,
			"termination": term.Trivia,
		}),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		ReturnType:  ret,
		Arguments:   args,
	}
}

func (p *sourceParser) parseCallbackInterfaceRest(extAttrs *ast.ExtendedAttributes, callback, base *token.Token) ast.Definition {
	name := p.expect(token.Identifier, "No name for callback interface")
	p.beginDefinition(name, "callback interface", false)
	open := p.expect("{", "Bodyless callback interface")
	members := p.parseInterfaceMembers(bodyInterface)
	close := p.expect("}", "Unterminated callback interface")
	term := p.expect(";", "Missing semicolon after callback interface")
	return &ast.CallbackInterface{
		Base: makeBase(extAttrs, ast.Trivia{
			"callback":    callback.Trivia,
			"base":        base.Trivia,
			"name":        name.Trivia,
			"open":        open.Trivia,
			"close":       close.Trivia,
			"termination": term.Trivia,
		}),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Members:     members,
	}
}

// parseInterfaceLike matches `interface mixin ...` or an ordinary
// interface. The partial token, when given, came from a partial
// wrapper.
func (p *sourceParser) parseInterfaceLike(extAttrs *ast.ExtendedAttributes, partial *token.Token) ast.Definition {
	base := p.consume("interface")
	if base == nil {
		return nil
	}
	if mixin := p.consume("mixin"); mixin != nil {
		return p.parseMixinRest(extAttrs, partial, base, mixin)
	}
	return p.parseInterfaceRest(extAttrs, partial, base)
}

func (p *sourceParser) parseInterfaceRest(extAttrs *ast.ExtendedAttributes, partial, base *token.Token) ast.Definition {
	name := p.expect(token.Identifier, "No name for interface")
	p.beginDefinition(name, "interface", partial != nil)
	trivia := ast.Trivia{"base": base.Trivia, "name": name.Trivia}
	if partial != nil {
		trivia["partial"] = partial.Trivia
	}
	var inheritance *ast.Inheritance
	if partial == nil {
		inheritance = p.parseInheritance()
	}
	open := p.expect("{", "Bodyless interface")
	members := p.parseInterfaceMembers(bodyInterface)
	close := p.expect("}", "Unterminated interface")
	term := p.expect(";", "Missing semicolon after interface")
	trivia["open"] = open.Trivia
	trivia["close"] = close.Trivia
	trivia["termination"] = term.Trivia
	return &ast.Interface{
		Base:        makeBase(extAttrs, trivia),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Partial:     partial != nil,
		Inheritance: inheritance,
		Members:     members,
	}
}

func (p *sourceParser) parseMixinRest(extAttrs *ast.ExtendedAttributes, partial, base, mixin *token.Token) ast.Definition {
	name := p.expect(token.Identifier, "No name for interface mixin")
	p.beginDefinition(name, "interface mixin", partial != nil)
	trivia := ast.Trivia{"base": base.Trivia, "mixin": mixin.Trivia, "name": name.Trivia}
	if partial != nil {
		trivia["partial"] = partial.Trivia
	}
	open := p.expect("{", "Bodyless interface mixin")
	members := p.parseInterfaceMembers(bodyMixin)
	close := p.expect("}", "Unterminated interface mixin")
	term := p.expect(";", "Missing semicolon after interface mixin")
	trivia["open"] = open.Trivia
	trivia["close"] = close.Trivia
	trivia["termination"] = term.Trivia
	return &ast.Mixin{
		Base:        makeBase(extAttrs, trivia),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Partial:     partial != nil,
		Members:     members,
	}
}

func (p *sourceParser) parseInheritance() *ast.Inheritance {
	colon := p.consume(":")
	if colon == nil {
		return nil
	}
	parent := p.expect(token.Identifier, "No type in inheritance")
	return &ast.Inheritance{
		Name:        unescape(parent.Value),
		EscapedName: parent.Value,
		Trivia:      ast.Trivia{"colon": colon.Trivia, "name": parent.Trivia},
	}
}

// parsePartial matches `partial` followed by a dictionary, interface
// or namespace. Partial definitions are never registered.
func (p *sourceParser) parsePartial(extAttrs *ast.ExtendedAttributes) ast.Definition {
	partial := p.consume("partial")
	if partial == nil {
		return nil
	}
	if d := p.parseDictionary(extAttrs, partial); d != nil {
		return d
	}
	if d := p.parseInterfaceLike(extAttrs, partial); d != nil {
		return d
	}
	if d := p.parseNamespace(extAttrs, partial); d != nil {
		return d
	}
	p.fail("Unrecognised partial definition")
	return nil
}

func (p *sourceParser) parseDictionary(extAttrs *ast.ExtendedAttributes, partial *token.Token) ast.Definition {
	base := p.consume("dictionary")
	if base == nil {
		return nil
	}
	name := p.expect(token.Identifier, "No name for dictionary")
	p.beginDefinition(name, "dictionary", partial != nil)
	trivia := ast.Trivia{"base": base.Trivia, "name": name.Trivia}
	if partial != nil {
		trivia["partial"] = partial.Trivia
	}
	var inheritance *ast.Inheritance
	if partial == nil {
		inheritance = p.parseInheritance()
	}
	open := p.expect("{", "Bodyless dictionary")
	var fields []*ast.Field
	for !p.probe("}") {
		fields = append(fields, p.parseField())
	}
	close := p.expect("}", "Unterminated dictionary")
	term := p.expect(";", "Missing semicolon after dictionary")
	trivia["open"] = open.Trivia
	trivia["close"] = close.Trivia
	trivia["termination"] = term.Trivia
	return &ast.Dictionary{
		Base:        makeBase(extAttrs, trivia),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Partial:     partial != nil,
		Inheritance: inheritance,
		Members:     fields,
	}
}

// parseField matches one dictionary member.
func (p *sourceParser) parseField() *ast.Field {
	extAttrs := p.parseExtendedAttrs()
	required := p.consume("required")
	typ := p.parseTypeWithExtAttrs("dictionary-type")
	if typ == nil {
		p.fail("No type for dictionary member")
	}
	name := p.expect(token.Identifier, "No name for dictionary member")
	def := p.parseDefault()
	if required != nil && def != nil {
		p.fail("Required member must not have a default")
	}
	term := p.expect(";", "Unterminated dictionary member")
	trivia := ast.Trivia{"name": name.Trivia, "termination": term.Trivia}
	if required != nil {
		trivia["required"] = required.Trivia
	}
	return &ast.Field{
		Base:        makeBase(extAttrs, trivia),
		Required:    required != nil,
		IDLType:     typ,
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Default:     def,
	}
}

func (p *sourceParser) parseNamespace(extAttrs *ast.ExtendedAttributes, partial *token.Token) ast.Definition {
	base := p.consume("namespace")
	if base == nil {
		return nil
	}
	name := p.expect(token.Identifier, "No name for namespace")
	p.beginDefinition(name, "namespace", partial != nil)
	trivia := ast.Trivia{"base": base.Trivia, "name": name.Trivia}
	if partial != nil {
		trivia["partial"] = partial.Trivia
	}
	open := p.expect("{", "Bodyless namespace")
	members := p.parseInterfaceMembers(bodyNamespace)
	close := p.expect("}", "Unterminated namespace")
	term := p.expect(";", "Missing semicolon after namespace")
	trivia["open"] = open.Trivia
	trivia["close"] = close.Trivia
	trivia["termination"] = term.Trivia
	return &ast.Namespace{
		Base:        makeBase(extAttrs, trivia),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Partial:     partial != nil,
		Members:     members,
	}
}

func (p *sourceParser) parseEnum(extAttrs *ast.ExtendedAttributes) ast.Definition {
	base := p.consume("enum")
	if base == nil {
		return nil
	}
	name := p.expect(token.Identifier, "No name for enum")
	p.beginDefinition(name, "enum", false)
	open := p.expect("{", "Bodyless enum")
	var values []*ast.EnumValue
	for !p.probe("}") {
		if len(values) > 0 {
			comma := p.consume(",")
			if comma == nil {
				p.fail("No comma between enum values")
			}
			last := values[len(values)-1]
			last.Separator = ","
			last.Trivia["separator"] = comma.Trivia
			if p.probe("}") {
				break
			}
		}
		value, trivia, ok := p.consumeUntyped(token.String)
		if !ok {
			p.fail("Unexpected value in enum")
		}
		values = append(values, &ast.EnumValue{
			Value:  value[1 : len(value)-1],
			Trivia: ast.Trivia{"value": trivia},
		})
	}
	close := p.expect("}", "Unterminated enum")
	if len(values) == 0 {
		p.fail("No value in enum")
	}
	term := p.expect(";", "Missing semicolon after enum")
	return &ast.Enum{
		Base: makeBase(extAttrs, ast.Trivia{
			"base":        base.Trivia,
			"name":        name.Trivia,
			"open":        open.Trivia,
			"close":       close.Trivia,
			"termination": term.Trivia,
		}),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		Values:      values,
	}
}

func (p *sourceParser) parseTypedef(extAttrs *ast.ExtendedAttributes) ast.Definition {
	base := p.consume("typedef")
	if base == nil {
		return nil
	}
	typ := p.parseTypeWithExtAttrs("typedef-type")
	if typ == nil {
		p.fail("No type in typedef")
	}
	name := p.expect(token.Identifier, "No name in typedef")
	p.beginDefinition(name, "typedef", false)
	term := p.expect(";", "Unterminated typedef")
	return &ast.Typedef{
		Base: makeBase(extAttrs, ast.Trivia{
			"base":        base.Trivia,
			"name":        name.Trivia,
			"termination": term.Trivia,
		}),
		Name:        unescape(name.Value),
		EscapedName: name.Value,
		IDLType:     typ,
	}
}

// parseIncludes is speculative: an identifier not followed by
// `includes` is handed back for other productions.
func (p *sourceParser) parseIncludes(extAttrs *ast.ExtendedAttributes) ast.Definition {
	start := p.position
	target := p.consume(token.Identifier)
	if target == nil {
		return nil
	}
	base := p.consume("includes")
	if base == nil {
		p.unconsume(start)
		return nil
	}
	mixin := p.expect(token.Identifier, "Incomplete includes statement")
	term := p.expect(";", "No terminating ; for includes statement")
	return &ast.Includes{
		Base: makeBase(extAttrs, ast.Trivia{
			"target":      target.Trivia,
			"base":        base.Trivia,
			"includes":    mixin.Trivia,
			"termination": term.Trivia,
		}),
		Target:          unescape(target.Value),
		TargetEscaped:   target.Value,
		Includes:        unescape(mixin.Value),
		IncludesEscaped: mixin.Value,
	}
}

// parseImplements handles the legacy `A implements B;` form the same
// way parseIncludes does.
func (p *sourceParser) parseImplements(extAttrs *ast.ExtendedAttributes) ast.Definition {
	start := p.position
	target := p.consume(token.Identifier)
	if target == nil {
		return nil
	}
	base := p.consume("implements")
	if base == nil {
		p.unconsume(start)
		return nil
	}
	source := p.expect(token.Identifier, "Incomplete implements statement")
	term := p.expect(";", "No terminating ; for implements statement")
	return &ast.Implements{
		Base: makeBase(extAttrs, ast.Trivia{
			"target":      target.Trivia,
			"base":        base.Trivia,
			"implements":  source.Trivia,
			"termination": term.Trivia,
		}),
		Target:            unescape(target.Value),
		TargetEscaped:     target.Value,
		Implements:        unescape(source.Value),
		ImplementsEscaped: source.Value,
	}
}
