package delegate

import "unsafe"

// ============================================================================
// Delegate0 - no-argument delegates
// ============================================================================

// Delegate0 is a two-word callable wrapper for signatures func() R.
// The zero value is the empty delegate: Callable reports false and Call
// returns the zero value of R.
type Delegate0[R any] struct {
	call func(unsafe.Pointer) R
	data unsafe.Pointer
}

// Trampoline for a bound func value. The data word is the function itself.
func callFunc0[R any](data unsafe.Pointer) R {
	return asFunc[func() R](data)()
}

// Trampoline for a bound func variable, dereferenced on every call.
func callRef0[R any](data unsafe.Pointer) R {
	return (*(*func() R)(data))()
}

// Bind0 binds a func value. Binding nil yields the empty delegate.
func Bind0[R any](fn func() R) Delegate0[R] {
	if fn == nil {
		return Delegate0[R]{}
	}
	return Delegate0[R]{call: funcTramp0[R](), data: funcword(fn)}
}

// BindMethod0 binds a method expression such as (*T).M, or any function
// taking *T as its sole parameter, to a specific object.
func BindMethod0[T, R any](obj *T, m func(*T) R) Delegate0[R] {
	if m == nil {
		return Delegate0[R]{}
	}
	return Delegate0[R]{call: methodTramp0(m), data: unsafe.Pointer(obj)}
}

// BindRef0 binds a func variable by reference.
func BindRef0[R any](fn *func() R) Delegate0[R] {
	if fn == nil {
		return Delegate0[R]{}
	}
	return Delegate0[R]{call: refTramp0[R](), data: unsafe.Pointer(fn)}
}

// BindRaw0 installs a hand-written trampoline and an opaque pointer.
func BindRaw0[R any](tramp func(unsafe.Pointer) R, data unsafe.Pointer) Delegate0[R] {
	if tramp == nil {
		return Delegate0[R]{}
	}
	return Delegate0[R]{call: tramp, data: data}
}

// Call invokes the bound target. Calling an empty delegate is defined: it
// does nothing and returns the zero value of R.
func (d Delegate0[R]) Call() R {
	if d.call == nil {
		var zero R
		return zero
	}
	return d.call(d.data)
}

// Callable reports whether a target is bound.
func (d Delegate0[R]) Callable() bool { return d.call != nil }

// Clear resets the delegate to its empty state.
func (d *Delegate0[R]) Clear() { *d = Delegate0[R]{} }

// SetFunc rebinds in place, like Bind0.
func (d *Delegate0[R]) SetFunc(fn func() R) *Delegate0[R] {
	*d = Bind0(fn)
	return d
}

// SetRef rebinds in place, like BindRef0.
func (d *Delegate0[R]) SetRef(fn *func() R) *Delegate0[R] {
	*d = BindRef0(fn)
	return d
}

// SetRaw rebinds in place, like BindRaw0.
func (d *Delegate0[R]) SetRaw(tramp func(unsafe.Pointer) R, data unsafe.Pointer) *Delegate0[R] {
	*d = BindRaw0(tramp, data)
	return d
}

// Equal reports whether both delegates hold the identical trampoline and
// the identical data word. Two empty delegates are equal.
func (d Delegate0[R]) Equal(rhs Delegate0[R]) bool {
	return codeword(d.call) == codeword(rhs.call) && d.data == rhs.data
}

// Less defines a total order for container placement only. The empty
// delegate sorts first; the rest of the order follows raw pointer values
// and carries no meaning.
func (d Delegate0[R]) Less(rhs Delegate0[R]) bool {
	lw, rw := uintptr(codeword(d.call)), uintptr(codeword(rhs.call))
	if lw != rw {
		return lw < rw
	}
	return uintptr(d.data) < uintptr(rhs.data)
}

// ============================================================================
// Delegate1 - single-argument delegates
// ============================================================================

// Delegate1 is a two-word callable wrapper for signatures func(A1) R.
//
// The call word is the trampoline; the data word is either a bound func
// value, a pointer to a func variable, or a pointer to a bound object,
// depending on how the delegate was constructed. Delegates are plain
// values: copying and assignment are bitwise, and a copy is
// indistinguishable from its source.
//
// Example:
//
//	c := Counter{V: 3}
//	d := delegate.BindMethod1(&c, (*Counter).Add)
//	d.Call(4) // c.Add(4)
type Delegate1[A1, R any] struct {
	call func(unsafe.Pointer, A1) R
	data unsafe.Pointer
}

// Trampoline for a bound func value. The data word is the function itself;
// the trampoline rebuilds the func value and calls it directly.
func callFunc1[A1, R any](data unsafe.Pointer, a1 A1) R {
	return asFunc[func(A1) R](data)(a1)
}

// Trampoline for a bound func variable, dereferenced on every call so that
// reassignment of the variable is observed.
func callRef1[A1, R any](data unsafe.Pointer, a1 A1) R {
	return (*(*func(A1) R)(data))(a1)
}

// Bind1 binds a func value: a top-level function, an existing closure, or
// a bound method value. Binding nil yields the empty delegate.
//
// Identity note: top-level functions are backed by a single static func
// value, so Bind1(f).Equal(Bind1(f)) holds for them. A func literal
// produces a fresh func value on each evaluation, so two delegates bound
// to separately evaluated literals are never equal even when the bodies
// match.
func Bind1[A1, R any](fn func(A1) R) Delegate1[A1, R] {
	if fn == nil {
		return Delegate1[A1, R]{}
	}
	return Delegate1[A1, R]{call: funcTramp1[A1, R](), data: funcword(fn)}
}

// BindMethod1 binds a method to a specific object. The method is supplied
// as a method expression such as (*Counter).Add; any free function whose
// first parameter is *T works the same way. Object and method are bound
// together, and the object is referenced, not copied: mutations made after
// binding are observed by subsequent calls.
//
// Method expressions of value-receiver methods are accepted too; those
// call on a copy of the object and therefore cannot mutate it.
func BindMethod1[T, A1, R any](obj *T, m func(*T, A1) R) Delegate1[A1, R] {
	if m == nil {
		return Delegate1[A1, R]{}
	}
	return Delegate1[A1, R]{call: methodTramp1(m), data: unsafe.Pointer(obj)}
}

// BindRef1 binds a func variable by reference. The variable is read on
// every call, so assigning a new function to it redirects the delegate
// without rebinding.
func BindRef1[A1, R any](fn *func(A1) R) Delegate1[A1, R] {
	if fn == nil {
		return Delegate1[A1, R]{}
	}
	return Delegate1[A1, R]{call: refTramp1[A1, R](), data: unsafe.Pointer(fn)}
}

// BindRaw1 installs a hand-written trampoline and an opaque pointer. The
// pointer is forwarded to the trampoline verbatim on every call. This is
// the low-level extension point for bindings the named constructors do not
// cover.
func BindRaw1[A1, R any](tramp func(unsafe.Pointer, A1) R, data unsafe.Pointer) Delegate1[A1, R] {
	if tramp == nil {
		return Delegate1[A1, R]{}
	}
	return Delegate1[A1, R]{call: tramp, data: data}
}

// Call invokes the bound target with a1. Calling an empty delegate is
// defined: it does nothing and returns the zero value of R. Call itself
// never allocates; the only indirection is the one trampoline call.
func (d Delegate1[A1, R]) Call(a1 A1) R {
	if d.call == nil {
		var zero R
		return zero
	}
	return d.call(d.data, a1)
}

// Callable reports whether a target is bound.
func (d Delegate1[A1, R]) Callable() bool { return d.call != nil }

// Clear resets the delegate to its empty state. A cleared delegate behaves
// exactly like a fresh zero value.
func (d *Delegate1[A1, R]) Clear() { *d = Delegate1[A1, R]{} }

// SetFunc rebinds in place, like Bind1.
func (d *Delegate1[A1, R]) SetFunc(fn func(A1) R) *Delegate1[A1, R] {
	*d = Bind1(fn)
	return d
}

// SetRef rebinds in place, like BindRef1.
func (d *Delegate1[A1, R]) SetRef(fn *func(A1) R) *Delegate1[A1, R] {
	*d = BindRef1(fn)
	return d
}

// SetRaw rebinds in place, like BindRaw1.
func (d *Delegate1[A1, R]) SetRaw(tramp func(unsafe.Pointer, A1) R, data unsafe.Pointer) *Delegate1[A1, R] {
	*d = BindRaw1(tramp, data)
	return d
}

// Equal reports whether both delegates hold the identical trampoline and
// the identical data word: the same function, or the same method bound to
// the same object. Bindings that merely produce the same results are not
// equal. Two empty delegates are equal.
func (d Delegate1[A1, R]) Equal(rhs Delegate1[A1, R]) bool {
	return codeword(d.call) == codeword(rhs.call) && d.data == rhs.data
}

// Less defines a total order so delegates can key sorted containers. The
// empty delegate sorts first; beyond that the order follows raw pointer
// values, varies between builds, and must not be interpreted.
func (d Delegate1[A1, R]) Less(rhs Delegate1[A1, R]) bool {
	lw, rw := uintptr(codeword(d.call)), uintptr(codeword(rhs.call))
	if lw != rw {
		return lw < rw
	}
	return uintptr(d.data) < uintptr(rhs.data)
}

// ============================================================================
// Delegate2 - two-argument delegates
// ============================================================================

// Delegate2 is a two-word callable wrapper for signatures func(A1, A2) R.
// See Delegate1 for the full contract.
type Delegate2[A1, A2, R any] struct {
	call func(unsafe.Pointer, A1, A2) R
	data unsafe.Pointer
}

func callFunc2[A1, A2, R any](data unsafe.Pointer, a1 A1, a2 A2) R {
	return asFunc[func(A1, A2) R](data)(a1, a2)
}

func callRef2[A1, A2, R any](data unsafe.Pointer, a1 A1, a2 A2) R {
	return (*(*func(A1, A2) R)(data))(a1, a2)
}

// Bind2 binds a func value. Binding nil yields the empty delegate.
func Bind2[A1, A2, R any](fn func(A1, A2) R) Delegate2[A1, A2, R] {
	if fn == nil {
		return Delegate2[A1, A2, R]{}
	}
	return Delegate2[A1, A2, R]{call: funcTramp2[A1, A2, R](), data: funcword(fn)}
}

// BindMethod2 binds a method expression or *T-first function to an object.
func BindMethod2[T, A1, A2, R any](obj *T, m func(*T, A1, A2) R) Delegate2[A1, A2, R] {
	if m == nil {
		return Delegate2[A1, A2, R]{}
	}
	return Delegate2[A1, A2, R]{call: methodTramp2(m), data: unsafe.Pointer(obj)}
}

// BindRef2 binds a func variable by reference.
func BindRef2[A1, A2, R any](fn *func(A1, A2) R) Delegate2[A1, A2, R] {
	if fn == nil {
		return Delegate2[A1, A2, R]{}
	}
	return Delegate2[A1, A2, R]{call: refTramp2[A1, A2, R](), data: unsafe.Pointer(fn)}
}

// BindRaw2 installs a hand-written trampoline and an opaque pointer.
func BindRaw2[A1, A2, R any](tramp func(unsafe.Pointer, A1, A2) R, data unsafe.Pointer) Delegate2[A1, A2, R] {
	if tramp == nil {
		return Delegate2[A1, A2, R]{}
	}
	return Delegate2[A1, A2, R]{call: tramp, data: data}
}

// Call invokes the bound target. An empty delegate returns the zero R.
func (d Delegate2[A1, A2, R]) Call(a1 A1, a2 A2) R {
	if d.call == nil {
		var zero R
		return zero
	}
	return d.call(d.data, a1, a2)
}

// Callable reports whether a target is bound.
func (d Delegate2[A1, A2, R]) Callable() bool { return d.call != nil }

// Clear resets the delegate to its empty state.
func (d *Delegate2[A1, A2, R]) Clear() { *d = Delegate2[A1, A2, R]{} }

// SetFunc rebinds in place, like Bind2.
func (d *Delegate2[A1, A2, R]) SetFunc(fn func(A1, A2) R) *Delegate2[A1, A2, R] {
	*d = Bind2(fn)
	return d
}

// SetRef rebinds in place, like BindRef2.
func (d *Delegate2[A1, A2, R]) SetRef(fn *func(A1, A2) R) *Delegate2[A1, A2, R] {
	*d = BindRef2(fn)
	return d
}

// SetRaw rebinds in place, like BindRaw2.
func (d *Delegate2[A1, A2, R]) SetRaw(tramp func(unsafe.Pointer, A1, A2) R, data unsafe.Pointer) *Delegate2[A1, A2, R] {
	*d = BindRaw2(tramp, data)
	return d
}

// Equal reports binding identity; see Delegate1.Equal.
func (d Delegate2[A1, A2, R]) Equal(rhs Delegate2[A1, A2, R]) bool {
	return codeword(d.call) == codeword(rhs.call) && d.data == rhs.data
}

// Less defines the container-placement order; see Delegate1.Less.
func (d Delegate2[A1, A2, R]) Less(rhs Delegate2[A1, A2, R]) bool {
	lw, rw := uintptr(codeword(d.call)), uintptr(codeword(rhs.call))
	if lw != rw {
		return lw < rw
	}
	return uintptr(d.data) < uintptr(rhs.data)
}

// ============================================================================
// Delegate3 - three-argument delegates
// ============================================================================

// Delegate3 is a two-word callable wrapper for signatures
// func(A1, A2, A3) R. See Delegate1 for the full contract. Wider
// signatures are out of scope; compose a struct argument instead.
type Delegate3[A1, A2, A3, R any] struct {
	call func(unsafe.Pointer, A1, A2, A3) R
	data unsafe.Pointer
}

func callFunc3[A1, A2, A3, R any](data unsafe.Pointer, a1 A1, a2 A2, a3 A3) R {
	return asFunc[func(A1, A2, A3) R](data)(a1, a2, a3)
}

func callRef3[A1, A2, A3, R any](data unsafe.Pointer, a1 A1, a2 A2, a3 A3) R {
	return (*(*func(A1, A2, A3) R)(data))(a1, a2, a3)
}

// Bind3 binds a func value. Binding nil yields the empty delegate.
func Bind3[A1, A2, A3, R any](fn func(A1, A2, A3) R) Delegate3[A1, A2, A3, R] {
	if fn == nil {
		return Delegate3[A1, A2, A3, R]{}
	}
	return Delegate3[A1, A2, A3, R]{call: funcTramp3[A1, A2, A3, R](), data: funcword(fn)}
}

// BindMethod3 binds a method expression or *T-first function to an object.
func BindMethod3[T, A1, A2, A3, R any](obj *T, m func(*T, A1, A2, A3) R) Delegate3[A1, A2, A3, R] {
	if m == nil {
		return Delegate3[A1, A2, A3, R]{}
	}
	return Delegate3[A1, A2, A3, R]{call: methodTramp3(m), data: unsafe.Pointer(obj)}
}

// BindRef3 binds a func variable by reference.
func BindRef3[A1, A2, A3, R any](fn *func(A1, A2, A3) R) Delegate3[A1, A2, A3, R] {
	if fn == nil {
		return Delegate3[A1, A2, A3, R]{}
	}
	return Delegate3[A1, A2, A3, R]{call: refTramp3[A1, A2, A3, R](), data: unsafe.Pointer(fn)}
}

// BindRaw3 installs a hand-written trampoline and an opaque pointer.
func BindRaw3[A1, A2, A3, R any](tramp func(unsafe.Pointer, A1, A2, A3) R, data unsafe.Pointer) Delegate3[A1, A2, A3, R] {
	if tramp == nil {
		return Delegate3[A1, A2, A3, R]{}
	}
	return Delegate3[A1, A2, A3, R]{call: tramp, data: data}
}

// Call invokes the bound target. An empty delegate returns the zero R.
func (d Delegate3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R {
	if d.call == nil {
		var zero R
		return zero
	}
	return d.call(d.data, a1, a2, a3)
}

// Callable reports whether a target is bound.
func (d Delegate3[A1, A2, A3, R]) Callable() bool { return d.call != nil }

// Clear resets the delegate to its empty state.
func (d *Delegate3[A1, A2, A3, R]) Clear() { *d = Delegate3[A1, A2, A3, R]{} }

// SetFunc rebinds in place, like Bind3.
func (d *Delegate3[A1, A2, A3, R]) SetFunc(fn func(A1, A2, A3) R) *Delegate3[A1, A2, A3, R] {
	*d = Bind3(fn)
	return d
}

// SetRef rebinds in place, like BindRef3.
func (d *Delegate3[A1, A2, A3, R]) SetRef(fn *func(A1, A2, A3) R) *Delegate3[A1, A2, A3, R] {
	*d = BindRef3(fn)
	return d
}

// SetRaw rebinds in place, like BindRaw3.
func (d *Delegate3[A1, A2, A3, R]) SetRaw(tramp func(unsafe.Pointer, A1, A2, A3) R, data unsafe.Pointer) *Delegate3[A1, A2, A3, R] {
	*d = BindRaw3(tramp, data)
	return d
}

// Equal reports binding identity; see Delegate1.Equal.
func (d Delegate3[A1, A2, A3, R]) Equal(rhs Delegate3[A1, A2, A3, R]) bool {
	return codeword(d.call) == codeword(rhs.call) && d.data == rhs.data
}

// Less defines the container-placement order; see Delegate1.Less.
func (d Delegate3[A1, A2, A3, R]) Less(rhs Delegate3[A1, A2, A3, R]) bool {
	lw, rw := uintptr(codeword(d.call)), uintptr(codeword(rhs.call))
	if lw != rw {
		return lw < rw
	}
	return uintptr(d.data) < uintptr(rhs.data)
}
