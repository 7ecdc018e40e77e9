package interp

// Environment maps names to values and chains to an enclosing scope. The
// chain is searched outward from the innermost active block to the global
// scope; parent links only ever point outward, so the chain never cycles.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a top-level environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a child scope of outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Define introduces a binding in the current scope, overwriting any existing
// binding of the same name in this scope. A binding here shadows the same
// name in enclosing scopes without altering them.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get resolves a name through the scope chain. The second result is false if
// no scope defines the name.
func (e *Environment) Get(name string) (Value, bool) {
	value, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return value, ok
}

// Assign mutates the nearest scope that already defines the name. It returns
// false if no scope defines it; assignment never implicitly creates a
// binding.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = value
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return false
}
