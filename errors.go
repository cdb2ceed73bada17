// errors.go: user-facing error wrapping and caret-snippet rendering,
// adapted from daios-ai-msg's errors.go. It turns lexer/parser
// diagnostics into Python-style error snippets with a caret pointing at
// the offending column:
//
//	PARSE ERROR at 2:9: no prefix parse function for ; found
//
//	   1 | let a = 1;
//	   2 | let x = ;
//	     |         ^
//	   3 | x
//
// Runtime errors are not wrapped here: they are first-class Error
// values threaded through evaluation, not Go errors, so there is no
// RuntimeError counterpart to *LexError/*ParseError.
package autumn

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments err with a caret-annotated snippet of
// src. It recognizes *LexError and *ParseError; any other error is
// returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with an optional source name
// ("<repl>", a file path, ...) included in the header line.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettyErrorStringLabeled builds a Python-like snippet with a header
// and a caret. It shows at most one line of context before and after,
// and clamps line/col to the bounds of src so rendering never panics.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
