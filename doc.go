/*
Package delegate provides a fixed-size, non-owning callable wrapper.

# Overview

A Delegate binds a free function, a method on a specific object, or a
closure variable into a uniform, copyable, comparable value of exactly two
machine words: a trampoline function pointer and one opaque data word. It
does part of what a plain Go func value or a closure does, but without heap
allocation at bind or call time, with value identity that can be compared
and ordered, and with an explicit non-owning relationship to the bound
target. The one exception is the very first Bind or BindRef of a given
signature in a process, which initializes that signature's shared
trampoline; every later bind of the same signature reuses it.

The price is less generality. The delegate only stores pointers; the caller
must keep bound objects and func variables alive for as long as the
delegate is used.

# Quick Example

	func add(x, y int) int { return x + y }

	d := delegate.Bind2(add)
	d.Call(2, 3) // 5

	type Counter struct{ V int }
	func (c *Counter) Add(x int) int { return c.V + x }

	c := Counter{V: 3}
	m := delegate.BindMethod1(&c, (*Counter).Add)
	m.Call(4) // 7
	c.V = 10
	m.Call(4) // 14 - the object is bound by reference, never copied

# Binding Forms

  - Bind0..Bind3: a func value. The data word holds the function itself;
    binding the same top-level function twice yields equal delegates.
  - BindMethod0..BindMethod3: an object pointer plus a method expression
    such as (*Counter).Add, or any free function taking the object pointer
    as its first parameter. Object and method are supplied together.
  - BindRef0..BindRef3: a pointer to a func variable. Reassigning the
    variable is observed by later calls.
  - BindRaw0..BindRaw3: a hand-written trampoline plus an opaque pointer.
    The low-level extension point; the pointer is forwarded verbatim.
  - MethodOf / ConstMethodOf: capture a method without an object, combine
    with an object later (see MemFn and ConstMemFn).

# Zero Value and Nullability

The zero value is the empty delegate. Calling it does nothing and returns
the zero value of the result type; Callable reports false and Clear resets
any delegate back to this state. This mirrors how a nil function pointer
behaves in callback tables, except the call itself is always safe.

# Identity, Equality and Ordering

Two delegates are equal only when they hold the same trampoline code and
the identical data word: the same function, or the same method bound to the
same object. Bindings that merely compute the same results are not equal.
Each evaluation of a func literal creates a distinct function value, so two
delegates bound to separately evaluated literals of the same body are not
equal either.

BindRaw trampolines take part in the same identity: pass a top-level
function or a method expression and carry all state in the data word. Two
closures built from the same literal share code, so capture-carrying raw
trampolines with equal data words would compare equal.

Less defines a total order so delegates can key sorted slices and search
trees. The order compares raw pointer values and has no meaning beyond
stable container placement; it can change between builds and must not be
interpreted.

# Mutability of the Bound Object

Go receiver kinds carry the read-only distinction: a method expression of a
value-receiver method calls on a copy of the object and cannot mutate it,
while a pointer-receiver method can. ConstMethodOf captures a promise not
to mutate; the Mutable adapter is the explicit opt-in for placing such a
capture in a mutating slot.

# Lifetime Rules

The delegate never owns the bound target. The data word is a live pointer,
so the garbage collector keeps the target reachable, but semantically the
binding is a borrow: rebinding or clearing a delegate does not finalize
anything, and copies of a delegate all refer to the same target.

# Package Import

	import "github.com/Pure-Company/delegate"
*/
package delegate
