package delegate

import "unsafe"

// Deferred member capture.
//
// A MemFn holds "which method" without "which object": one trampoline
// word, no data. It is combined with an object later, either by producing
// a delegate (Bind), by rebinding an existing delegate (Assign), or by a
// direct call that never materializes a delegate at all (Call).
//
// Read-only captures get their own type. ConstMethodOf records a promise
// that the captured function does not mutate the object; method
// expressions of value-receiver methods keep that promise structurally,
// since they call on a copy. Go cannot check the receiver kind at this
// boundary, so passing a mutating function to ConstMethodOf is a contract
// violation on the caller, not a compile error. Widening a read-only
// capture into a mutable slot is only possible through the explicit
// Mutable adapter, never implicitly.

// ============================================================================
// MemFn0 / ConstMemFn0
// ============================================================================

// MemFn0 captures a method with signature func(*T) R, unbound.
// The zero value is the empty capture.
type MemFn0[T, R any] struct {
	call func(unsafe.Pointer) R
}

// ConstMemFn0 is a read-only capture of a method with signature
// func(*T) R. See the package note on read-only captures.
type ConstMemFn0[T, R any] struct {
	call func(unsafe.Pointer) R
}

// MethodOf0 captures a mutating method expression or *T-first function.
func MethodOf0[T, R any](m func(*T) R) MemFn0[T, R] {
	if m == nil {
		return MemFn0[T, R]{}
	}
	return MemFn0[T, R]{call: methodTramp0(m)}
}

// ConstMethodOf0 captures a non-mutating method expression or *T-first
// function.
func ConstMethodOf0[T, R any](m func(*T) R) ConstMemFn0[T, R] {
	if m == nil {
		return ConstMemFn0[T, R]{}
	}
	return ConstMemFn0[T, R]{call: methodTramp0(m)}
}

// Mutable adapts a read-only capture for use in a mutable-capture slot.
// The explicit name is the point: the widening never happens implicitly.
func (f ConstMemFn0[T, R]) Mutable() MemFn0[T, R] { return MemFn0[T, R](f) }

// Bind combines the capture with an object, producing a bound delegate.
func (f MemFn0[T, R]) Bind(obj *T) Delegate0[R] {
	if f.call == nil {
		return Delegate0[R]{}
	}
	return Delegate0[R]{call: f.call, data: unsafe.Pointer(obj)}
}

// Bind combines the capture with an object, producing a bound delegate.
func (f ConstMemFn0[T, R]) Bind(obj *T) Delegate0[R] { return MemFn0[T, R](f).Bind(obj) }

// Assign rebinds an existing delegate to this capture and obj.
func (f MemFn0[T, R]) Assign(d *Delegate0[R], obj *T) { *d = f.Bind(obj) }

// Assign rebinds an existing delegate to this capture and obj.
func (f ConstMemFn0[T, R]) Assign(d *Delegate0[R], obj *T) { *d = f.Bind(obj) }

// Call invokes the captured method on obj without building a delegate.
// An empty capture returns the zero R.
func (f MemFn0[T, R]) Call(obj *T) R {
	if f.call == nil {
		var zero R
		return zero
	}
	return f.call(unsafe.Pointer(obj))
}

// Call invokes the captured method on obj without building a delegate.
func (f ConstMemFn0[T, R]) Call(obj *T) R { return MemFn0[T, R](f).Call(obj) }

// Callable reports whether a method is captured.
func (f MemFn0[T, R]) Callable() bool { return f.call != nil }

// Callable reports whether a method is captured.
func (f ConstMemFn0[T, R]) Callable() bool { return f.call != nil }

// Equal compares captured trampolines; there is no data at this stage.
func (f MemFn0[T, R]) Equal(rhs MemFn0[T, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Equal compares captured trampolines; there is no data at this stage.
func (f ConstMemFn0[T, R]) Equal(rhs ConstMemFn0[T, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Less orders captures for container placement only; the empty capture
// sorts first.
func (f MemFn0[T, R]) Less(rhs MemFn0[T, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// Less orders captures for container placement only.
func (f ConstMemFn0[T, R]) Less(rhs ConstMemFn0[T, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// ============================================================================
// MemFn1 / ConstMemFn1
// ============================================================================

// MemFn1 captures a method with signature func(*T, A1) R, unbound.
//
// Example:
//
//	add := delegate.MethodOf1((*Counter).Add)
//	...
//	d := add.Bind(&counter)   // delegate when one is needed
//	add.Call(&counter, 4)     // or invoke directly
type MemFn1[T, A1, R any] struct {
	call func(unsafe.Pointer, A1) R
}

// ConstMemFn1 is a read-only capture of a method with signature
// func(*T, A1) R.
type ConstMemFn1[T, A1, R any] struct {
	call func(unsafe.Pointer, A1) R
}

// MethodOf1 captures a mutating method expression or *T-first function.
func MethodOf1[T, A1, R any](m func(*T, A1) R) MemFn1[T, A1, R] {
	if m == nil {
		return MemFn1[T, A1, R]{}
	}
	return MemFn1[T, A1, R]{call: methodTramp1(m)}
}

// ConstMethodOf1 captures a non-mutating method expression or *T-first
// function.
func ConstMethodOf1[T, A1, R any](m func(*T, A1) R) ConstMemFn1[T, A1, R] {
	if m == nil {
		return ConstMemFn1[T, A1, R]{}
	}
	return ConstMemFn1[T, A1, R]{call: methodTramp1(m)}
}

// Mutable adapts a read-only capture for use in a mutable-capture slot.
func (f ConstMemFn1[T, A1, R]) Mutable() MemFn1[T, A1, R] { return MemFn1[T, A1, R](f) }

// Bind combines the capture with an object, producing a bound delegate.
func (f MemFn1[T, A1, R]) Bind(obj *T) Delegate1[A1, R] {
	if f.call == nil {
		return Delegate1[A1, R]{}
	}
	return Delegate1[A1, R]{call: f.call, data: unsafe.Pointer(obj)}
}

// Bind combines the capture with an object, producing a bound delegate.
func (f ConstMemFn1[T, A1, R]) Bind(obj *T) Delegate1[A1, R] {
	return MemFn1[T, A1, R](f).Bind(obj)
}

// Assign rebinds an existing delegate to this capture and obj.
func (f MemFn1[T, A1, R]) Assign(d *Delegate1[A1, R], obj *T) { *d = f.Bind(obj) }

// Assign rebinds an existing delegate to this capture and obj.
func (f ConstMemFn1[T, A1, R]) Assign(d *Delegate1[A1, R], obj *T) { *d = f.Bind(obj) }

// Call invokes the captured method on obj without building a delegate.
func (f MemFn1[T, A1, R]) Call(obj *T, a1 A1) R {
	if f.call == nil {
		var zero R
		return zero
	}
	return f.call(unsafe.Pointer(obj), a1)
}

// Call invokes the captured method on obj without building a delegate.
func (f ConstMemFn1[T, A1, R]) Call(obj *T, a1 A1) R { return MemFn1[T, A1, R](f).Call(obj, a1) }

// Callable reports whether a method is captured.
func (f MemFn1[T, A1, R]) Callable() bool { return f.call != nil }

// Callable reports whether a method is captured.
func (f ConstMemFn1[T, A1, R]) Callable() bool { return f.call != nil }

// Equal compares captured trampolines; there is no data at this stage.
func (f MemFn1[T, A1, R]) Equal(rhs MemFn1[T, A1, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Equal compares captured trampolines; there is no data at this stage.
func (f ConstMemFn1[T, A1, R]) Equal(rhs ConstMemFn1[T, A1, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Less orders captures for container placement only.
func (f MemFn1[T, A1, R]) Less(rhs MemFn1[T, A1, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// Less orders captures for container placement only.
func (f ConstMemFn1[T, A1, R]) Less(rhs ConstMemFn1[T, A1, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// ============================================================================
// MemFn2 / ConstMemFn2
// ============================================================================

// MemFn2 captures a method with signature func(*T, A1, A2) R, unbound.
type MemFn2[T, A1, A2, R any] struct {
	call func(unsafe.Pointer, A1, A2) R
}

// ConstMemFn2 is a read-only capture of a method with signature
// func(*T, A1, A2) R.
type ConstMemFn2[T, A1, A2, R any] struct {
	call func(unsafe.Pointer, A1, A2) R
}

// MethodOf2 captures a mutating method expression or *T-first function.
func MethodOf2[T, A1, A2, R any](m func(*T, A1, A2) R) MemFn2[T, A1, A2, R] {
	if m == nil {
		return MemFn2[T, A1, A2, R]{}
	}
	return MemFn2[T, A1, A2, R]{call: methodTramp2(m)}
}

// ConstMethodOf2 captures a non-mutating method expression or *T-first
// function.
func ConstMethodOf2[T, A1, A2, R any](m func(*T, A1, A2) R) ConstMemFn2[T, A1, A2, R] {
	if m == nil {
		return ConstMemFn2[T, A1, A2, R]{}
	}
	return ConstMemFn2[T, A1, A2, R]{call: methodTramp2(m)}
}

// Mutable adapts a read-only capture for use in a mutable-capture slot.
func (f ConstMemFn2[T, A1, A2, R]) Mutable() MemFn2[T, A1, A2, R] { return MemFn2[T, A1, A2, R](f) }

// Bind combines the capture with an object, producing a bound delegate.
func (f MemFn2[T, A1, A2, R]) Bind(obj *T) Delegate2[A1, A2, R] {
	if f.call == nil {
		return Delegate2[A1, A2, R]{}
	}
	return Delegate2[A1, A2, R]{call: f.call, data: unsafe.Pointer(obj)}
}

// Bind combines the capture with an object, producing a bound delegate.
func (f ConstMemFn2[T, A1, A2, R]) Bind(obj *T) Delegate2[A1, A2, R] {
	return MemFn2[T, A1, A2, R](f).Bind(obj)
}

// Assign rebinds an existing delegate to this capture and obj.
func (f MemFn2[T, A1, A2, R]) Assign(d *Delegate2[A1, A2, R], obj *T) { *d = f.Bind(obj) }

// Assign rebinds an existing delegate to this capture and obj.
func (f ConstMemFn2[T, A1, A2, R]) Assign(d *Delegate2[A1, A2, R], obj *T) { *d = f.Bind(obj) }

// Call invokes the captured method on obj without building a delegate.
func (f MemFn2[T, A1, A2, R]) Call(obj *T, a1 A1, a2 A2) R {
	if f.call == nil {
		var zero R
		return zero
	}
	return f.call(unsafe.Pointer(obj), a1, a2)
}

// Call invokes the captured method on obj without building a delegate.
func (f ConstMemFn2[T, A1, A2, R]) Call(obj *T, a1 A1, a2 A2) R {
	return MemFn2[T, A1, A2, R](f).Call(obj, a1, a2)
}

// Callable reports whether a method is captured.
func (f MemFn2[T, A1, A2, R]) Callable() bool { return f.call != nil }

// Callable reports whether a method is captured.
func (f ConstMemFn2[T, A1, A2, R]) Callable() bool { return f.call != nil }

// Equal compares captured trampolines; there is no data at this stage.
func (f MemFn2[T, A1, A2, R]) Equal(rhs MemFn2[T, A1, A2, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Equal compares captured trampolines; there is no data at this stage.
func (f ConstMemFn2[T, A1, A2, R]) Equal(rhs ConstMemFn2[T, A1, A2, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Less orders captures for container placement only.
func (f MemFn2[T, A1, A2, R]) Less(rhs MemFn2[T, A1, A2, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// Less orders captures for container placement only.
func (f ConstMemFn2[T, A1, A2, R]) Less(rhs ConstMemFn2[T, A1, A2, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// ============================================================================
// MemFn3 / ConstMemFn3
// ============================================================================

// MemFn3 captures a method with signature func(*T, A1, A2, A3) R, unbound.
type MemFn3[T, A1, A2, A3, R any] struct {
	call func(unsafe.Pointer, A1, A2, A3) R
}

// ConstMemFn3 is a read-only capture of a method with signature
// func(*T, A1, A2, A3) R.
type ConstMemFn3[T, A1, A2, A3, R any] struct {
	call func(unsafe.Pointer, A1, A2, A3) R
}

// MethodOf3 captures a mutating method expression or *T-first function.
func MethodOf3[T, A1, A2, A3, R any](m func(*T, A1, A2, A3) R) MemFn3[T, A1, A2, A3, R] {
	if m == nil {
		return MemFn3[T, A1, A2, A3, R]{}
	}
	return MemFn3[T, A1, A2, A3, R]{call: methodTramp3(m)}
}

// ConstMethodOf3 captures a non-mutating method expression or *T-first
// function.
func ConstMethodOf3[T, A1, A2, A3, R any](m func(*T, A1, A2, A3) R) ConstMemFn3[T, A1, A2, A3, R] {
	if m == nil {
		return ConstMemFn3[T, A1, A2, A3, R]{}
	}
	return ConstMemFn3[T, A1, A2, A3, R]{call: methodTramp3(m)}
}

// Mutable adapts a read-only capture for use in a mutable-capture slot.
func (f ConstMemFn3[T, A1, A2, A3, R]) Mutable() MemFn3[T, A1, A2, A3, R] {
	return MemFn3[T, A1, A2, A3, R](f)
}

// Bind combines the capture with an object, producing a bound delegate.
func (f MemFn3[T, A1, A2, A3, R]) Bind(obj *T) Delegate3[A1, A2, A3, R] {
	if f.call == nil {
		return Delegate3[A1, A2, A3, R]{}
	}
	return Delegate3[A1, A2, A3, R]{call: f.call, data: unsafe.Pointer(obj)}
}

// Bind combines the capture with an object, producing a bound delegate.
func (f ConstMemFn3[T, A1, A2, A3, R]) Bind(obj *T) Delegate3[A1, A2, A3, R] {
	return MemFn3[T, A1, A2, A3, R](f).Bind(obj)
}

// Assign rebinds an existing delegate to this capture and obj.
func (f MemFn3[T, A1, A2, A3, R]) Assign(d *Delegate3[A1, A2, A3, R], obj *T) { *d = f.Bind(obj) }

// Assign rebinds an existing delegate to this capture and obj.
func (f ConstMemFn3[T, A1, A2, A3, R]) Assign(d *Delegate3[A1, A2, A3, R], obj *T) {
	*d = f.Bind(obj)
}

// Call invokes the captured method on obj without building a delegate.
func (f MemFn3[T, A1, A2, A3, R]) Call(obj *T, a1 A1, a2 A2, a3 A3) R {
	if f.call == nil {
		var zero R
		return zero
	}
	return f.call(unsafe.Pointer(obj), a1, a2, a3)
}

// Call invokes the captured method on obj without building a delegate.
func (f ConstMemFn3[T, A1, A2, A3, R]) Call(obj *T, a1 A1, a2 A2, a3 A3) R {
	return MemFn3[T, A1, A2, A3, R](f).Call(obj, a1, a2, a3)
}

// Callable reports whether a method is captured.
func (f MemFn3[T, A1, A2, A3, R]) Callable() bool { return f.call != nil }

// Callable reports whether a method is captured.
func (f ConstMemFn3[T, A1, A2, A3, R]) Callable() bool { return f.call != nil }

// Equal compares captured trampolines; there is no data at this stage.
func (f MemFn3[T, A1, A2, A3, R]) Equal(rhs MemFn3[T, A1, A2, A3, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Equal compares captured trampolines; there is no data at this stage.
func (f ConstMemFn3[T, A1, A2, A3, R]) Equal(rhs ConstMemFn3[T, A1, A2, A3, R]) bool {
	return codeword(f.call) == codeword(rhs.call)
}

// Less orders captures for container placement only.
func (f MemFn3[T, A1, A2, A3, R]) Less(rhs MemFn3[T, A1, A2, A3, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}

// Less orders captures for container placement only.
func (f ConstMemFn3[T, A1, A2, A3, R]) Less(rhs ConstMemFn3[T, A1, A2, A3, R]) bool {
	return uintptr(codeword(f.call)) < uintptr(codeword(rhs.call))
}
