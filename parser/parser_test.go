package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlkit/webidl2/ast"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	os.Exit(m.Run())
}

func redirectTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	return func() {
		teardown()
		gtrace.CoreTracer = gologadapter.New()
	}
}

func parseOne(t *testing.T, input string) ast.Definition {
	t.Helper()
	defs, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, defs, 2) // the definition plus the eof node
	require.IsType(t, &ast.Eof{}, defs[1])
	return defs[0]
}

func parseErr(t *testing.T, input string) *ParseError {
	t.Helper()
	defs, err := Parse(input)
	require.Error(t, err)
	require.Nil(t, defs)
	perr, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T", err)
	return perr
}

func TestEmptyInterface(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	def := parseOne(t, "interface Foo { };")
	iface, ok := def.(*ast.Interface)
	require.True(t, ok)
	assert.Equal(t, "Foo", iface.Name)
	assert.Equal(t, "Foo", iface.EscapedName)
	assert.Empty(t, iface.Members)
	assert.Nil(t, iface.Inheritance)
	assert.False(t, iface.Partial)
}

func TestInterfaceInheritance(t *testing.T) {
	def := parseOne(t, "interface Derived : Base { };")
	iface := def.(*ast.Interface)
	require.NotNil(t, iface.Inheritance)
	assert.Equal(t, "Base", iface.Inheritance.Name)
}

func TestEscapedName(t *testing.T) {
	def := parseOne(t, "interface _interface { };")
	iface := def.(*ast.Interface)
	assert.Equal(t, "interface", iface.Name)
	assert.Equal(t, "_interface", iface.EscapedName)
}

func TestInterfaceMembers(t *testing.T) {
	def := parseOne(t, `interface I {
		const unsigned long long MAX = 0xFF;
		readonly attribute DOMString name;
		getter double (unsigned long index);
		static void reset(optional boolean hard = false);
		stringifier;
		iterable<long>;
	};`)
	iface := def.(*ast.Interface)
	require.Len(t, iface.Members, 6)

	cnst := iface.Members[0].(*ast.Const)
	assert.Equal(t, "MAX", cnst.Name)
	assert.Equal(t, "unsigned long long", cnst.IDLType.Name)
	assert.Equal(t, "number", cnst.Value.Type)
	assert.Equal(t, "0xFF", cnst.Value.Value)

	attr := iface.Members[1].(*ast.Attribute)
	assert.True(t, attr.Readonly)
	assert.Equal(t, "name", attr.Name)
	assert.Equal(t, "DOMString", attr.IDLType.Name)

	getter := iface.Members[2].(*ast.Operation)
	assert.Equal(t, "getter", getter.Special)
	assert.Empty(t, getter.Name)
	require.Len(t, getter.Arguments, 1)
	assert.Equal(t, "index", getter.Arguments[0].Name)

	static := iface.Members[3].(*ast.Operation)
	assert.Equal(t, "static", static.Special)
	require.Len(t, static.Arguments, 1)
	arg := static.Arguments[0]
	assert.True(t, arg.Optional)
	require.NotNil(t, arg.Default)
	assert.Equal(t, "boolean", arg.Default.Type)
	assert.Equal(t, "false", arg.Default.Value)

	strf := iface.Members[4].(*ast.Operation)
	assert.Equal(t, "stringifier", strf.Special)
	assert.Nil(t, strf.ReturnType)

	iter := iface.Members[5].(*ast.IterableLike)
	assert.Equal(t, "iterable", iter.Decl)
	require.Len(t, iter.IDLTypes, 1)
	assert.Equal(t, "long", iter.IDLTypes[0].Name)
}

func TestMaplike(t *testing.T) {
	def := parseOne(t, "interface M { readonly maplike<DOMString, long>; };")
	iface := def.(*ast.Interface)
	ml := iface.Members[0].(*ast.IterableLike)
	assert.Equal(t, "maplike", ml.Decl)
	assert.True(t, ml.Readonly)
	require.Len(t, ml.IDLTypes, 2)
	assert.Equal(t, "DOMString", ml.IDLTypes[0].Name)
	assert.Equal(t, "long", ml.IDLTypes[1].Name)
}

func TestReadonlyIterableRejected(t *testing.T) {
	perr := parseErr(t, "interface I { readonly iterable<long>; };")
	assert.Contains(t, perr.Message, "Only maplike and setlike declarations may be readonly")
}

func TestMixin(t *testing.T) {
	def := parseOne(t, "interface mixin M { attribute short x; void op(); };")
	mixin := def.(*ast.Mixin)
	assert.Equal(t, "M", mixin.Name)
	require.Len(t, mixin.Members, 2)
	attr := mixin.Members[0].(*ast.Attribute)
	assert.False(t, attr.Inherit)
	op := mixin.Members[1].(*ast.Operation)
	assert.Empty(t, op.Special)
}

func TestPartialIsNotRegistered(t *testing.T) {
	defs, err := Parse("interface Foo { };\npartial interface Foo { };")
	require.NoError(t, err)
	require.Len(t, defs, 3)
	partial := defs[1].(*ast.Interface)
	assert.True(t, partial.Partial)
	assert.Nil(t, partial.Inheritance)
}

func TestDuplicateName(t *testing.T) {
	perr := parseErr(t, "interface Foo { };\ninterface Foo { };")
	assert.Contains(t, perr.Message, `name "Foo" of type "interface" was already seen`)
	assert.Equal(t, 2, perr.Line)
}

func TestDuplicateAcrossKinds(t *testing.T) {
	perr := parseErr(t, "enum Foo { \"a\" };\ndictionary Foo { };")
	assert.Contains(t, perr.Message, `name "Foo" of type "enum" was already seen`)
}

func TestDictionaryFields(t *testing.T) {
	def := parseOne(t, "dictionary D { required long x; long y = 3; DOMString s = \"hi\"; };")
	dict := def.(*ast.Dictionary)
	require.Len(t, dict.Members, 3)

	x := dict.Members[0]
	assert.True(t, x.Required)
	assert.Equal(t, "long", x.IDLType.Name)
	assert.Nil(t, x.Default)

	y := dict.Members[1]
	assert.False(t, y.Required)
	require.NotNil(t, y.Default)
	assert.Equal(t, "number", y.Default.Type)
	assert.Equal(t, "3", y.Default.Value)

	s := dict.Members[2]
	require.NotNil(t, s.Default)
	assert.Equal(t, "string", s.Default.Type)
	assert.Equal(t, "hi", s.Default.Value)
}

func TestRequiredWithDefault(t *testing.T) {
	perr := parseErr(t, "dictionary D { required long x = 3; };")
	assert.Contains(t, perr.Message, "Required member must not have a default")
}

func TestEmptySequenceDefault(t *testing.T) {
	def := parseOne(t, "dictionary D { sequence<long> xs = []; };")
	dict := def.(*ast.Dictionary)
	require.NotNil(t, dict.Members[0].Default)
	assert.Equal(t, "sequence", dict.Members[0].Default.Type)

	perr := parseErr(t, "dictionary D { sequence<long> xs = [1]; };")
	assert.Contains(t, perr.Message, "Default sequence value must be empty")
}

func TestEnum(t *testing.T) {
	def := parseOne(t, `enum E { "a", "b" };`)
	enum := def.(*ast.Enum)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "a", enum.Values[0].Value)
	assert.Equal(t, "b", enum.Values[1].Value)
	assert.Equal(t, ",", enum.Values[0].Separator)
	assert.Empty(t, enum.Values[1].Separator)
}

func TestEnumTrailingComma(t *testing.T) {
	def := parseOne(t, `enum E { "a", "b", };`)
	enum := def.(*ast.Enum)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, ",", enum.Values[1].Separator)
}

func TestEnumErrors(t *testing.T) {
	perr := parseErr(t, "enum E { };")
	assert.Contains(t, perr.Message, "No value in enum")

	perr = parseErr(t, `enum E { "a" "b" };`)
	assert.Contains(t, perr.Message, "No comma between enum values")
}

func TestTypedefUnion(t *testing.T) {
	def := parseOne(t, "typedef (DOMString or long) StrOrInt;")
	td := def.(*ast.Typedef)
	assert.Equal(t, "StrOrInt", td.Name)
	require.True(t, td.IDLType.Union)
	require.Len(t, td.IDLType.Subtypes, 2)
	assert.Equal(t, "DOMString", td.IDLType.Subtypes[0].Name)
	assert.Equal(t, "or", td.IDLType.Subtypes[0].Separator)
	assert.Equal(t, "long", td.IDLType.Subtypes[1].Name)
}

func TestSingleBranchUnion(t *testing.T) {
	perr := parseErr(t, "typedef (DOMString) Str;")
	assert.Contains(t, perr.Message, "At least two types are expected")
}

func TestSequenceAttributeRejected(t *testing.T) {
	perr := parseErr(t, "interface I { attribute sequence<long> xs; };")
	assert.Contains(t, perr.Message, "Attributes cannot accept sequence types")
	assert.Contains(t, perr.Message, "inside `interface I`")
}

func TestRecordAttributeRejected(t *testing.T) {
	perr := parseErr(t, "interface I { attribute record<DOMString, long> m; };")
	assert.Contains(t, perr.Message, "Attributes cannot accept record types")
}

func TestRecordKeyMustBeString(t *testing.T) {
	perr := parseErr(t, "typedef record<long, DOMString> R;")
	assert.Contains(t, perr.Message, "Record key must be one of: ByteString, DOMString, USVString")
}

func TestNullability(t *testing.T) {
	def := parseOne(t, "typedef long? MaybeLong;")
	td := def.(*ast.Typedef)
	assert.True(t, td.IDLType.Nullable)

	perr := parseErr(t, "typedef Promise<long>? P;")
	assert.Contains(t, perr.Message, "Promise type cannot be nullable")

	perr = parseErr(t, "typedef any? A;")
	assert.Contains(t, perr.Message, "Type `any` cannot be nullable")

	perr = parseErr(t, "typedef long?? L;")
	assert.Contains(t, perr.Message, "Can't nullable more than once")
}

func TestIncludes(t *testing.T) {
	def := parseOne(t, "A includes B;")
	inc := def.(*ast.Includes)
	assert.Equal(t, "A", inc.Target)
	assert.Equal(t, "B", inc.Includes)
}

func TestImplements(t *testing.T) {
	def := parseOne(t, "Window implements ECMA262Globals;")
	impl := def.(*ast.Implements)
	assert.Equal(t, "Window", impl.Target)
	assert.Equal(t, "ECMA262Globals", impl.Implements)
}

func TestCallback(t *testing.T) {
	def := parseOne(t, "callback AsyncOperationCallback = void (DOMString status);")
	cb := def.(*ast.Callback)
	assert.Equal(t, "AsyncOperationCallback", cb.Name)
	assert.Equal(t, "void", cb.ReturnType.Name)
	require.Len(t, cb.Arguments, 1)
	assert.Equal(t, "status", cb.Arguments[0].Name)
}

func TestCallbackInterface(t *testing.T) {
	def := parseOne(t, "callback interface EventListener { void handleEvent(Event event); };")
	cbi := def.(*ast.CallbackInterface)
	assert.Equal(t, "EventListener", cbi.Name)
	require.Len(t, cbi.Members, 1)
}

func TestNamespace(t *testing.T) {
	def := parseOne(t, "namespace Telemetry { readonly attribute boolean enabled; void record(double value); };")
	ns := def.(*ast.Namespace)
	require.Len(t, ns.Members, 2)

	perr := parseErr(t, "namespace N { attribute boolean b; };")
	assert.Contains(t, perr.Message, "Attributes in namespaces must be readonly")
}

func TestKeywordArgumentName(t *testing.T) {
	def := parseOne(t, "interface I { void f(long attribute, DOMString... required); };")
	iface := def.(*ast.Interface)
	op := iface.Members[0].(*ast.Operation)
	require.Len(t, op.Arguments, 2)
	assert.Equal(t, "attribute", op.Arguments[0].Name)
	assert.Equal(t, "required", op.Arguments[1].Name)
	assert.True(t, op.Arguments[1].Variadic)
}

func TestTrailingCommaInArguments(t *testing.T) {
	perr := parseErr(t, "interface I { void f(long a,); };")
	assert.Contains(t, perr.Message, "Trailing comma in arguments list")
}

func TestInheritAttribute(t *testing.T) {
	def := parseOne(t, "interface I { inherit attribute double width; };")
	iface := def.(*ast.Interface)
	attr := iface.Members[0].(*ast.Attribute)
	assert.True(t, attr.Inherit)
}

func TestConstValues(t *testing.T) {
	def := parseOne(t, `interface C {
		const boolean T = true;
		const double NEG = -Infinity;
		const unrestricted double NAN = NaN;
		const long? NOTHING = null;
		const float F = 1.5e3;
	};`)
	iface := def.(*ast.Interface)
	require.Len(t, iface.Members, 5)

	assert.Equal(t, "boolean", iface.Members[0].(*ast.Const).Value.Type)
	neg := iface.Members[1].(*ast.Const).Value
	assert.Equal(t, "Infinity", neg.Type)
	assert.True(t, neg.Negative)
	nan := iface.Members[2].(*ast.Const).Value
	assert.Equal(t, "NaN", nan.Type)
	assert.Empty(t, nan.Value)
	null := iface.Members[3].(*ast.Const).Value
	assert.Equal(t, "null", null.Type)
	assert.Empty(t, null.Value)
	f := iface.Members[4].(*ast.Const).Value
	assert.Equal(t, "number", f.Type)
	assert.Equal(t, "1.5e3", f.Value)
}

func TestExtendedAttributes(t *testing.T) {
	def := parseOne(t, `[Constructor(DOMString name), Exposed=(Window,Worker), Pref="dom.enabled", NamedConstructor=Audio(DOMString src)] interface Foo { };`)
	iface := def.(*ast.Interface)
	require.NotNil(t, iface.ExtAttrs)
	items := iface.ExtAttrs.Items
	require.Len(t, items, 4)

	ctor := items[0]
	assert.Equal(t, "Constructor", ctor.Name)
	require.NotNil(t, ctor.Signature)
	require.Len(t, ctor.Signature.Arguments, 1)

	exposed := items[1]
	require.NotNil(t, exposed.RHS)
	assert.Equal(t, "identifier-list", exposed.RHS.Type)
	require.Len(t, exposed.RHS.List, 2)
	assert.Equal(t, "Window", exposed.RHS.List[0].Value)

	pref := items[2]
	require.NotNil(t, pref.RHS)
	assert.Equal(t, "string", pref.RHS.Type)
	assert.Equal(t, `"dom.enabled"`, pref.RHS.Value)

	named := items[3]
	require.NotNil(t, named.RHS)
	assert.Equal(t, "identifier", named.RHS.Type)
	assert.Equal(t, "Audio", named.RHS.Value)
	require.NotNil(t, named.Signature)
}

func TestExtendedAttributeErrors(t *testing.T) {
	perr := parseErr(t, "[] interface Foo { };")
	assert.Contains(t, perr.Message, "Extended attribute list must not be empty")

	perr = parseErr(t, "[A,] interface Foo { };")
	assert.Contains(t, perr.Message, "Trailing comma in extended attribute list")

	perr = parseErr(t, "[A=] interface Foo { };")
	assert.Contains(t, perr.Message, "No right hand side to extended attribute assignment")
}

func TestStrayExtendedAttributes(t *testing.T) {
	perr := parseErr(t, "[NoInterfaceObject]")
	assert.Contains(t, perr.Message, "Stray extended attributes")
}

func TestUnrecognisedTokens(t *testing.T) {
	perr := parseErr(t, "interface Foo { }; )")
	assert.Contains(t, perr.Message, "Unrecognised tokens")
}

func TestErrorCapture(t *testing.T) {
	perr := parseErr(t, "interface Foo {\n  bogus!\n};")
	assert.Equal(t, 2, perr.Line)
	assert.NotEmpty(t, perr.Input)
	require.NotEmpty(t, perr.Tokens)
	assert.LessOrEqual(t, len(perr.Tokens), 5)

	rendered := perr.Error()
	assert.Contains(t, rendered, ", line 2 (tokens: ")
	assert.Contains(t, rendered, perr.Message)
}

func TestEofTriviaPreserved(t *testing.T) {
	defs, err := Parse("interface Foo { }; // done\n")
	require.NoError(t, err)
	eof := defs[len(defs)-1].(*ast.Eof)
	assert.Equal(t, " // done\n", eof.Trivia)
}

func TestDumpString(t *testing.T) {
	defs, err := Parse("enum E { \"a\" };")
	require.NoError(t, err)
	out := DumpString(defs)
	assert.True(t, strings.Contains(out, "E"))
}
