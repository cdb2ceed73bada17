// environment.go implements the lexical scope chain evaluation threads
// through the AST walk, grounded on daios-ai-msg's Env type
// (interpreter.go) and on the classic Monkey-family Environment
// (other_examples/EarthlyZ9-monkey-interpreter__environment.go).
package autumn

// Environment is a name-to-value mapping with an optional parent. Get
// walks the parent chain; Set is always local — insertion never
// touches an outer scope. Rebinding a name already local to this
// Environment silently overwrites it (last-wins).
//
// Functions capture the Environment that was current when their fn
// literal evaluated, by reference: a Function's Env field and the
// defining scope's Environment are the same pointer, so a function
// that is itself stored back into the environment it closed over
// creates a reference cycle. Go's garbage collector reclaims such
// cycles on its own, unlike a reference-counted model, which would need
// either to accept the leak or break the cycle with weak links.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child environment enclosing outer.
// The evaluator calls this exactly on function entry: blocks do not
// create new scopes, only calls do.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get retrieves the nearest visible binding for name, walking outward
// through parents. The bool result is false if name is bound nowhere in
// the chain.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment only, shadowing (and, if
// name is already local here, overwriting) any outer binding.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
