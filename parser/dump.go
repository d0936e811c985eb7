package parser

import (
	"bytes"
	"io"

	"github.com/kr/pretty"

	"github.com/idlkit/webidl2/ast"
)

// Dump writes a readable rendering of a parsed definition list.
func Dump(w io.Writer, defs []ast.Definition) error {
	_, err := pretty.Fprintf(w, "%# v", defs)
	return err
}

// DumpString renders a parsed definition list as a string.
func DumpString(defs []ast.Definition) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, defs); err != nil {
		panic(err)
	}
	return buf.String()
}
