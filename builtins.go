// builtins.go registers the small set of host-implemented functions
// resolved when an Identifier is not locally bound. Their names and
// error-message forms come verbatim from the host language's builtin
// table; their copy-on-write array semantics follow
// other_examples/eddmann-santa-lang-workshop__evaluator.go's
// push/first/rest rather than daios-ai-msg's in-place-mutating versions,
// since arrays here are immutable after construction.
package autumn

import "fmt"

var builtins = map[string]*Builtin{
	"len":   {Name: "len", Fn: builtinLen},
	"first": {Name: "first", Fn: builtinFirst},
	"last":  {Name: "last", Fn: builtinLast},
	"rest":  {Name: "rest", Fn: builtinRest},
	"push":  {Name: "push", Fn: builtinPush},
	"puts":  {Name: "puts", Fn: builtinPuts},
}

func wrongArgCount(got, want int) *Error {
	return newError("wrong number of arguments. got=%d, want=%d", got, want)
}

func argNotSupported(name string, obj Object) *Error {
	return newError("argument to '%s' not supported, got %s", name, obj.Type())
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return argNotSupported("len", arg)
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argNotSupported("first", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL_VALUE
	}
	return arr.Elements[0]
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argNotSupported("last", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL_VALUE
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argNotSupported("rest", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL_VALUE
	}
	cp := make([]Object, len(arr.Elements)-1)
	copy(cp, arr.Elements[1:])
	return &Array{Elements: cp}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return argNotSupported("push", args[0])
	}
	cp := make([]Object, len(arr.Elements)+1)
	copy(cp, arr.Elements)
	cp[len(arr.Elements)] = args[1]
	return &Array{Elements: cp}
}

func builtinPuts(args ...Object) Object {
	for _, a := range args {
		fmt.Println(a.Inspect())
	}
	return NULL_VALUE
}
