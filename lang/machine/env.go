package machine

// cell is the single mutable slot of one Env frame. It is boxed
// separately from the Env node so that every alias of a frame (e.g. a
// Closure that captured this exact chain) observes a Modify through the
// shared cell rather than through the (immutable) chain spine. This is
// the minimum shared mutable state the interpreter needs, and it exists
// solely to make letrec's fixup visible to closures created by its own
// bindings.
type cell struct {
	name  string
	value Value
}

// Env is a persistent, singly-linked association chain mapping names to
// values with lexical shadowing: Extend prepends a frame in O(1) and
// Find returns the most recently extended match. The chain's spine is
// immutable (Extend never mutates an existing frame), but Modify
// mutates a cell's value in place, visible through every reference that
// shares that cell.
type Env struct {
	c      *cell
	parent *Env
}

// Empty returns the empty environment.
func Empty() *Env { return nil }

// Extend returns a new environment whose head frame binds name to v and
// whose tail is env. The receiver env is left untouched, so any other
// Env built from it (including ones already captured by a Closure)
// continues to see its own bindings.
func Extend(name string, v Value, env *Env) *Env {
	return &Env{c: &cell{name: name, value: v}, parent: env}
}

// Find returns the value bound to name, searching from the most
// recently extended frame outward. The second result is false if no
// frame binds name.
func Find(name string, env *Env) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if e.c.name == name {
			return e.c.value, true
		}
	}
	return nil, false
}

// Modify mutates the value held by the first (most recently extended)
// cell bearing name, in place. It is used only to fix up letrec
// bindings after their right-hand sides have been evaluated. It reports
// whether a matching cell was found.
func Modify(name string, v Value, env *Env) bool {
	for e := env; e != nil; e = e.parent {
		if e.c.name == name {
			e.c.value = v
			return true
		}
	}
	return false
}
