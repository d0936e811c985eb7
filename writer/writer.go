// Package writer regenerates WebIDL source text from a parsed tree.
// Because every terminal keeps its preceding trivia, writing the tree
// produced by an unmodified parse reproduces the input byte for byte.
package writer

import (
	"strings"

	"github.com/idlkit/webidl2/ast"
)

// Write renders a definition list back to WebIDL source text.
func Write(defs []ast.Definition) string {
	var w sourceWriter
	for _, def := range defs {
		w.definition(def)
	}
	return w.b.String()
}

type sourceWriter struct {
	b strings.Builder
}

// emit writes the trivia bound to slot followed by the terminal text.
func (w *sourceWriter) emit(trivia ast.Trivia, slot, text string) {
	w.b.WriteString(trivia[slot])
	w.b.WriteString(text)
}

// emitIf writes a terminal only when its slot was consumed.
func (w *sourceWriter) emitIf(trivia ast.Trivia, slot, text string) {
	if _, ok := trivia[slot]; ok {
		w.emit(trivia, slot, text)
	}
}

func (w *sourceWriter) definition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.Interface:
		w.extAttrs(d.ExtAttrs)
		w.emitIf(d.Trivia, "partial", "partial")
		w.emit(d.Trivia, "base", "interface")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.inheritance(d.Inheritance)
		w.emit(d.Trivia, "open", "{")
		w.members(d.Members)
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Mixin:
		w.extAttrs(d.ExtAttrs)
		w.emitIf(d.Trivia, "partial", "partial")
		w.emit(d.Trivia, "base", "interface")
		w.emit(d.Trivia, "mixin", "mixin")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "open", "{")
		w.members(d.Members)
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.CallbackInterface:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "callback", "callback")
		w.emit(d.Trivia, "base", "interface")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "open", "{")
		w.members(d.Members)
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Callback:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "base", "callback")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "assign", "=")
		w.typ(d.ReturnType)
		w.emit(d.Trivia, "open", "(")
		w.arguments(d.Arguments)
		w.emit(d.Trivia, "close", ")")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Dictionary:
		w.extAttrs(d.ExtAttrs)
		w.emitIf(d.Trivia, "partial", "partial")
		w.emit(d.Trivia, "base", "dictionary")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.inheritance(d.Inheritance)
		w.emit(d.Trivia, "open", "{")
		for _, f := range d.Members {
			w.field(f)
		}
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Namespace:
		w.extAttrs(d.ExtAttrs)
		w.emitIf(d.Trivia, "partial", "partial")
		w.emit(d.Trivia, "base", "namespace")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "open", "{")
		w.members(d.Members)
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Enum:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "base", "enum")
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "open", "{")
		for _, v := range d.Values {
			w.emit(v.Trivia, "value", `"`+v.Value+`"`)
			if v.Separator != "" {
				w.emit(v.Trivia, "separator", v.Separator)
			}
		}
		w.emit(d.Trivia, "close", "}")
		w.emit(d.Trivia, "termination", ";")
	case *ast.Typedef:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "base", "typedef")
		w.typ(d.IDLType)
		w.emit(d.Trivia, "name", d.EscapedName)
		w.emit(d.Trivia, "termination", ";")
	case *ast.Includes:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "target", d.TargetEscaped)
		w.emit(d.Trivia, "base", "includes")
		w.emit(d.Trivia, "includes", d.IncludesEscaped)
		w.emit(d.Trivia, "termination", ";")
	case *ast.Implements:
		w.extAttrs(d.ExtAttrs)
		w.emit(d.Trivia, "target", d.TargetEscaped)
		w.emit(d.Trivia, "base", "implements")
		w.emit(d.Trivia, "implements", d.ImplementsEscaped)
		w.emit(d.Trivia, "termination", ";")
	case *ast.Eof:
		w.b.WriteString(d.Trivia)
	}
}

func (w *sourceWriter) inheritance(inh *ast.Inheritance) {
	if inh == nil {
		return
	}
	w.emit(inh.Trivia, "colon", ":")
	w.emit(inh.Trivia, "name", inh.EscapedName)
}

func (w *sourceWriter) members(members []ast.Member) {
	for _, member := range members {
		switch m := member.(type) {
		case *ast.Const:
			w.extAttrs(m.ExtAttrs)
			w.emit(m.Trivia, "base", "const")
			w.typ(m.IDLType)
			w.emit(m.Trivia, "name", m.EscapedName)
			w.emit(m.Trivia, "assign", "=")
			w.value(m.Value)
			w.emit(m.Trivia, "termination", ";")
		case *ast.Attribute:
			w.extAttrs(m.ExtAttrs)
			w.emitIf(m.Trivia, "special", m.Special)
			w.emitIf(m.Trivia, "inherit", "inherit")
			w.emitIf(m.Trivia, "readonly", "readonly")
			w.emit(m.Trivia, "base", "attribute")
			w.typ(m.IDLType)
			w.emit(m.Trivia, "name", m.EscapedName)
			w.emit(m.Trivia, "termination", ";")
		case *ast.Operation:
			w.extAttrs(m.ExtAttrs)
			w.emitIf(m.Trivia, "special", m.Special)
			if m.ReturnType != nil {
				w.typ(m.ReturnType)
				w.emitIf(m.Trivia, "name", m.EscapedName)
				w.emit(m.Trivia, "open", "(")
				w.arguments(m.Arguments)
				w.emit(m.Trivia, "close", ")")
			}
			w.emit(m.Trivia, "termination", ";")
		case *ast.IterableLike:
			w.extAttrs(m.ExtAttrs)
			w.emitIf(m.Trivia, "readonly", "readonly")
			w.emit(m.Trivia, "base", m.Decl)
			w.emit(m.Trivia, "open", "<")
			for _, t := range m.IDLTypes {
				w.typ(t)
				if t.Separator != "" {
					w.emit(t.Trivia, "separator", t.Separator)
				}
			}
			w.emit(m.Trivia, "close", ">")
			w.emit(m.Trivia, "termination", ";")
		case *ast.Field:
			w.field(m)
		}
	}
}

func (w *sourceWriter) field(f *ast.Field) {
	w.extAttrs(f.ExtAttrs)
	w.emitIf(f.Trivia, "required", "required")
	w.typ(f.IDLType)
	w.emit(f.Trivia, "name", f.EscapedName)
	w.value(f.Default)
	w.emit(f.Trivia, "termination", ";")
}

func (w *sourceWriter) arguments(args []*ast.Argument) {
	for _, arg := range args {
		w.extAttrs(arg.ExtAttrs)
		w.emitIf(arg.Trivia, "optional", "optional")
		w.typ(arg.IDLType)
		w.emitIf(arg.Trivia, "variadic", "...")
		w.emit(arg.Trivia, "name", arg.EscapedName)
		w.value(arg.Default)
		if arg.Separator != "" {
			w.emit(arg.Trivia, "separator", arg.Separator)
		}
	}
}

func (w *sourceWriter) typ(t *ast.Type) {
	if t == nil {
		return
	}
	w.extAttrs(t.ExtAttrs)
	switch {
	case t.Union:
		w.emit(t.Trivia, "open", "(")
		for _, sub := range t.Subtypes {
			w.typ(sub)
			if sub.Separator != "" {
				w.emit(sub.Trivia, "separator", sub.Separator)
			}
		}
		w.emit(t.Trivia, "close", ")")
	case t.Generic != "":
		w.emit(t.Trivia, "base", t.Generic)
		w.emit(t.Trivia, "open", "<")
		for _, sub := range t.Subtypes {
			w.typ(sub)
			if sub.Separator != "" {
				w.emit(sub.Trivia, "separator", sub.Separator)
			}
		}
		w.emit(t.Trivia, "close", ">")
	default:
		w.emitIf(t.Trivia, "prefix", t.Prefix)
		base := t.EscapedName
		if base == "" {
			base = t.BaseName
		}
		w.emit(t.Trivia, "base", base)
		w.emitIf(t.Trivia, "postfix", t.Postfix)
	}
	w.emitIf(t.Trivia, "nullable", "?")
}

func (w *sourceWriter) value(v *ast.Value) {
	if v == nil {
		return
	}
	w.emitIf(v.Trivia, "assign", "=")
	switch v.Type {
	case "boolean", "number":
		w.emit(v.Trivia, "value", v.Value)
	case "string":
		w.emit(v.Trivia, "value", `"`+v.Value+`"`)
	case "null", "NaN":
		w.emit(v.Trivia, "value", v.Type)
	case "Infinity":
		text := "Infinity"
		if v.Negative {
			text = "-Infinity"
		}
		w.emit(v.Trivia, "value", text)
	case "sequence":
		w.emit(v.Trivia, "open", "[")
		w.emit(v.Trivia, "close", "]")
	}
}

func (w *sourceWriter) extAttrs(list *ast.ExtendedAttributes) {
	if list == nil {
		return
	}
	w.emit(list.Trivia, "open", "[")
	for _, attr := range list.Items {
		w.emit(attr.Trivia, "name", attr.Name)
		if _, ok := attr.Trivia["assign"]; ok {
			w.emit(attr.Trivia, "assign", "=")
			w.rhs(attr.RHS)
		}
		if attr.Signature != nil {
			w.emit(attr.Signature.Trivia, "open", "(")
			w.arguments(attr.Signature.Arguments)
			w.emit(attr.Signature.Trivia, "close", ")")
		}
		if attr.Separator != "" {
			w.emit(attr.Trivia, "separator", attr.Separator)
		}
	}
	w.emit(list.Trivia, "close", "]")
}

func (w *sourceWriter) rhs(rhs *ast.ExtAttrRHS) {
	if rhs == nil {
		return
	}
	if rhs.Type == "identifier-list" {
		w.emit(rhs.Trivia, "open", "(")
		for _, item := range rhs.List {
			w.emit(item.Trivia, "value", item.Value)
			if item.Separator != "" {
				w.emit(item.Trivia, "separator", item.Separator)
			}
		}
		w.emit(rhs.Trivia, "close", ")")
		return
	}
	w.emit(rhs.Trivia, "value", rhs.Value)
}
