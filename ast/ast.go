// Package ast defines the tree produced by parsing WebIDL source:
// definitions, members, types, extended attributes and literal values.
//
// Nodes preserve enough lexical information to reproduce the source
// byte for byte: every consumed terminal contributes a slot to the
// owning node's Trivia record, and identifiers keep their original
// spelling in EscapedName next to the unescaped Name.
package ast

// Trivia binds syntactic slot names (e.g. "base", "name", "open",
// "close", "termination") to the literal whitespace and comments that
// preceded the corresponding terminal. A slot is present, possibly
// empty, exactly when its terminal was consumed.
type Trivia map[string]string

// Base carries the slots common to every node: the optional extended
// attribute list and the trivia record.
type Base struct {
	ExtAttrs *ExtendedAttributes `json:"extAttrs,omitempty"`
	Trivia   Trivia              `json:"trivia"`
}

// Definition is a top-level WebIDL definition. The set of variants is
// closed: Interface, Mixin, CallbackInterface, Callback, Dictionary,
// Namespace, Enum, Typedef, Includes, Implements and the trailing Eof.
type Definition interface {
	isDefinition()
}

// Member is a construct inside an interface, mixin, namespace or
// dictionary body: Const, Attribute, Operation, IterableLike or Field.
type Member interface {
	isMember()
}

// Inheritance names the parent of an interface or dictionary.
// Trivia slots: colon, name.
type Inheritance struct {
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
	Trivia      Trivia `json:"trivia"`
}

// Interface is an ordinary (non-mixin) interface definition.
// Trivia slots: partial?, base, name, open, close, termination.
type Interface struct {
	Base
	Name        string       `json:"name"`
	EscapedName string       `json:"escapedName"`
	Partial     bool         `json:"partial,omitempty"`
	Inheritance *Inheritance `json:"inheritance,omitempty"`
	Members     []Member     `json:"members"`
}

func (*Interface) isDefinition() {}

// Mixin is an interface mixin. Mixins carry no inheritance and their
// member set is narrower than an ordinary interface's.
// Trivia slots: partial?, base, mixin, name, open, close, termination.
type Mixin struct {
	Base
	Name        string   `json:"name"`
	EscapedName string   `json:"escapedName"`
	Partial     bool     `json:"partial,omitempty"`
	Members     []Member `json:"members"`
}

func (*Mixin) isDefinition() {}

// CallbackInterface is a `callback interface` definition.
// Trivia slots: callback, base, name, open, close, termination.
type CallbackInterface struct {
	Base
	Name        string   `json:"name"`
	EscapedName string   `json:"escapedName"`
	Members     []Member `json:"members"`
}

func (*CallbackInterface) isDefinition() {}

// Callback is a callback function definition.
// Trivia slots: base, name, assign, open, close, termination.
type Callback struct {
	Base
	Name        string      `json:"name"`
	EscapedName string      `json:"escapedName"`
	ReturnType  *Type       `json:"idlType"`
	Arguments   []*Argument `json:"arguments"`
}

func (*Callback) isDefinition() {}

// Dictionary is a dictionary definition; its members are fields.
// Trivia slots: partial?, base, name, open, close, termination.
type Dictionary struct {
	Base
	Name        string       `json:"name"`
	EscapedName string       `json:"escapedName"`
	Partial     bool         `json:"partial,omitempty"`
	Inheritance *Inheritance `json:"inheritance,omitempty"`
	Members     []*Field     `json:"members"`
}

func (*Dictionary) isDefinition() {}

// Namespace allows only readonly attributes and regular operations.
// Trivia slots: partial?, base, name, open, close, termination.
type Namespace struct {
	Base
	Name        string   `json:"name"`
	EscapedName string   `json:"escapedName"`
	Partial     bool     `json:"partial,omitempty"`
	Members     []Member `json:"members"`
}

func (*Namespace) isDefinition() {}

// Enum is an enumeration of string values.
// Trivia slots: base, name, open, close, termination.
type Enum struct {
	Base
	Name        string       `json:"name"`
	EscapedName string       `json:"escapedName"`
	Values      []*EnumValue `json:"values"`
}

func (*Enum) isDefinition() {}

// EnumValue is one quoted enumeration value with the quotes stripped.
// Separator is "," when another value (or a trailing comma) follows.
// Trivia slots: value, separator?.
type EnumValue struct {
	Value     string `json:"value"`
	Separator string `json:"separator,omitempty"`
	Trivia    Trivia `json:"trivia"`
}

// Typedef names an existing type.
// Trivia slots: base, name, termination.
type Typedef struct {
	Base
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
	IDLType     *Type  `json:"idlType"`
}

func (*Typedef) isDefinition() {}

// Includes is an `A includes B;` statement.
// Trivia slots: target, base, includes, termination.
type Includes struct {
	Base
	Target          string `json:"target"`
	TargetEscaped   string `json:"targetEscaped"`
	Includes        string `json:"includes"`
	IncludesEscaped string `json:"includesEscaped"`
}

func (*Includes) isDefinition() {}

// Implements is an `A implements B;` statement.
// Trivia slots: target, base, implements, termination.
type Implements struct {
	Base
	Target            string `json:"target"`
	TargetEscaped     string `json:"targetEscaped"`
	Implements        string `json:"implements"`
	ImplementsEscaped string `json:"implementsEscaped"`
}

func (*Implements) isDefinition() {}

// Eof terminates the definition list and holds the trailing trivia of
// the source, closing the round-trip property.
type Eof struct {
	Trivia string `json:"trivia"`
}

func (*Eof) isDefinition() {}

// Const is a constant member.
// Trivia slots: base, name, assign, termination.
type Const struct {
	Base
	IDLType     *Type  `json:"idlType"`
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
	Value       *Value `json:"value"`
}

func (*Const) isMember() {}

// Attribute is an attribute member. Special is "static" or
// "stringifier" when the attribute was introduced by such a marker.
// Trivia slots: special?, inherit?, readonly?, base, name, termination.
type Attribute struct {
	Base
	Special     string `json:"special,omitempty"`
	Inherit     bool   `json:"inherit,omitempty"`
	Readonly    bool   `json:"readonly,omitempty"`
	IDLType     *Type  `json:"idlType"`
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
}

func (*Attribute) isMember() {}

// Operation is an operation member. Special is one of "getter",
// "setter", "deleter", "static" or "stringifier"; a bare
// `stringifier;` yields an Operation with special "stringifier" and no
// return type, name or argument list.
// Trivia slots: special?, name?, open?, close?, termination.
type Operation struct {
	Base
	Special     string      `json:"special,omitempty"`
	ReturnType  *Type       `json:"idlType,omitempty"`
	Name        string      `json:"name,omitempty"`
	EscapedName string      `json:"escapedName,omitempty"`
	Arguments   []*Argument `json:"arguments"`
}

func (*Operation) isMember() {}

// IterableLike is an iterable, legacyiterable, maplike or setlike
// declaration. Maplike declarations carry two type arguments, the
// others exactly one; only maplike and setlike may be readonly.
// Trivia slots: readonly?, base, open, close, termination.
type IterableLike struct {
	Base
	Decl     string  `json:"type"`
	Readonly bool    `json:"readonly,omitempty"`
	IDLTypes []*Type `json:"idlType"`
}

func (*IterableLike) isMember() {}

// Field is a dictionary member. A required field may not carry a
// default.
// Trivia slots: required?, name, termination.
type Field struct {
	Base
	Required    bool   `json:"required,omitempty"`
	IDLType     *Type  `json:"idlType"`
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
	Default     *Value `json:"default,omitempty"`
}

func (*Field) isMember() {}

// Argument is a single operation or callback argument. Separator is
// "," when another argument follows.
// Trivia slots: optional?, variadic?, name, separator?.
type Argument struct {
	Base
	Optional    bool   `json:"optional,omitempty"`
	Variadic    bool   `json:"variadic,omitempty"`
	IDLType     *Type  `json:"idlType"`
	Name        string `json:"name"`
	EscapedName string `json:"escapedName"`
	Default     *Value `json:"default,omitempty"`
	Separator   string `json:"separator,omitempty"`
}

// Type is a WebIDL type reference.
//
// For simple types Name holds the printable form ("unsigned long
// long", "DOMString"), BaseName the unprefixed base, and Prefix and
// Postfix the "unsigned"/"unrestricted" and trailing "long" terminals.
// Generic types (sequence, record, FrozenArray, Promise) and unions
// hold their constituents in Subtypes. Separator is set on a subtype
// followed by "," or "or".
//
// Role is the contextual tag: argument-type, attribute-type,
// const-type, dictionary-type, typedef-type or return-type.
//
// Trivia slots: prefix?, base, postfix?, open?, close?, nullable?,
// separator?.
type Type struct {
	Role        string              `json:"type,omitempty"`
	ExtAttrs    *ExtendedAttributes `json:"extAttrs,omitempty"`
	Trivia      Trivia              `json:"trivia"`
	Generic     string              `json:"generic,omitempty"`
	Union       bool                `json:"union,omitempty"`
	Nullable    bool                `json:"nullable,omitempty"`
	Prefix      string              `json:"prefix,omitempty"`
	Postfix     string              `json:"postfix,omitempty"`
	BaseName    string              `json:"baseName,omitempty"`
	Name        string              `json:"idlType,omitempty"`
	EscapedName string              `json:"escapedName,omitempty"`
	Subtypes    []*Type             `json:"subtype,omitempty"`
	Separator   string              `json:"separator,omitempty"`
}

// Value is a literal: a const value, a default value or an extended
// attribute payload. Type is one of "boolean", "number", "string",
// "null", "NaN", "Infinity" or "sequence" (the empty `[]` default).
// The null and NaN variants carry no payload.
// Trivia slots: assign?, value?, open?, close?.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
	Negative bool   `json:"negative,omitempty"`
	Trivia   Trivia `json:"trivia"`
}

// ExtendedAttributes is the bracketed attribute list applied to a
// definition, member, argument or type.
// Trivia slots: open, close.
type ExtendedAttributes struct {
	Items  []*ExtendedAttribute `json:"items"`
	Trivia Trivia               `json:"trivia"`
}

// ExtendedAttribute is one annotation inside the brackets:
// Name, Name=RHS, Name(args), Name=RHS(args) or Name=(identifiers).
// Trivia slots: name, assign?, separator?.
type ExtendedAttribute struct {
	Name      string      `json:"name"`
	RHS       *ExtAttrRHS `json:"rhs,omitempty"`
	Signature *Signature  `json:"signature,omitempty"`
	Separator string      `json:"separator,omitempty"`
	Trivia    Trivia      `json:"trivia"`
}

// ExtAttrRHS is the right-hand side of an extended attribute
// assignment. Type is "identifier", "integer", "float", "string" or
// "identifier-list".
// Trivia slots: value (scalar) or open, close (list).
type ExtAttrRHS struct {
	Type   string     `json:"type"`
	Value  string     `json:"value,omitempty"`
	List   []*RHSItem `json:"list,omitempty"`
	Trivia Trivia     `json:"trivia"`
}

// RHSItem is one identifier of an identifier-list right-hand side.
// Trivia slots: value, separator?.
type RHSItem struct {
	Value     string `json:"value"`
	Separator string `json:"separator,omitempty"`
	Trivia    Trivia `json:"trivia"`
}

// Signature is the parenthesised argument list of an extended
// attribute.
// Trivia slots: open, close.
type Signature struct {
	Arguments []*Argument `json:"arguments"`
	Trivia    Trivia      `json:"trivia"`
}
