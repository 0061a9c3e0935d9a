package delegate

import (
	"reflect"
	"sync"
	"unsafe"
)

// The two-word representation.
//
// Every delegate is a pair {call, data}. The call word is a func value of
// the uniform trampoline shape func(unsafe.Pointer, args...) R. The data
// word is a single pointer whose interpretation depends on which trampoline
// is installed:
//
//   - callFuncN trampolines: data is the one-word representation of a bound
//     func value (a *funcval in runtime terms).
//   - callRefN trampolines: data points at a func variable, dereferenced on
//     every call.
//   - method trampolines and raw trampolines: data points at the bound
//     object and is handed to the trampoline as-is.
//
// The interpretation is never read through the wrong trampoline, so the
// two meanings can share one word. Both meanings are real pointers, which
// keeps the bound target visible to the garbage collector.
//
// Identity model. A func value is one word pointing at an object whose
// first word is the code pointer; any captures (including a generic
// instantiation's dictionary) follow it. Top-level functions and method
// expressions are backed by a single static object, so their func-value
// word identifies them. Generic instantiations are not: materializing
// callFuncN[...] builds a closure over the instantiation's dictionary, and
// where that closure lives is incidental. Dispatcher identity therefore
// uses the code pointer, which is fixed per instantiation, and the
// trampoline closures themselves are interned per signature so that
// binding does not touch the heap.

// funcword returns the one-word representation of a func value. F must be
// a func type.
func funcword[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

// codeword returns the code pointer of a func value: the first word of
// the object its one-word representation points at. This is the
// dispatcher identity used by Equal and Less. Nil func values yield nil.
func codeword[F any](f F) unsafe.Pointer {
	w := funcword(f)
	if w == nil {
		return nil
	}
	return *(*unsafe.Pointer)(w)
}

// asFunc reconstructs a func value of type F from its one-word
// representation.
func asFunc[F any](w unsafe.Pointer) F {
	return *(*F)(unsafe.Pointer(&w))
}

// Trampoline casts. A method expression (*T).M has type func(*T, args...) R,
// which shares its calling convention with func(unsafe.Pointer, args...) R:
// the leading parameter is a pointer either way. Reinterpreting the func
// value lets the method expression itself serve as the trampoline, keeping
// the member binding inside two words with no wrapper closure.

func methodTramp0[T, R any](m func(*T) R) func(unsafe.Pointer) R {
	return *(*func(unsafe.Pointer) R)(unsafe.Pointer(&m))
}

func methodTramp1[T, A1, R any](m func(*T, A1) R) func(unsafe.Pointer, A1) R {
	return *(*func(unsafe.Pointer, A1) R)(unsafe.Pointer(&m))
}

func methodTramp2[T, A1, A2, R any](m func(*T, A1, A2) R) func(unsafe.Pointer, A1, A2) R {
	return *(*func(unsafe.Pointer, A1, A2) R)(unsafe.Pointer(&m))
}

func methodTramp3[T, A1, A2, A3, R any](m func(*T, A1, A2, A3) R) func(unsafe.Pointer, A1, A2, A3) R {
	return *(*func(unsafe.Pointer, A1, A2, A3) R)(unsafe.Pointer(&m))
}

// Interned trampolines. Materializing a generic function value inside a
// generic function allocates a fresh dictionary closure on every
// evaluation, which would make each bind both allocate and carry a unique
// call word. The accessors below materialize each signature's trampoline
// once and hand out the shared func value afterwards: the first binding
// of a signature initializes its map entry, every later bind is a lock-free
// lookup with no allocation. callFuncN and callRefN trampolines live in
// separate maps because they share key signatures.
var (
	funcTramps sync.Map // reflect.Type of the bound signature -> trampoline
	refTramps  sync.Map
)

func funcTramp0[R any]() func(unsafe.Pointer) R {
	key := reflect.TypeOf((*(func() R))(nil)).Elem()
	if v, ok := funcTramps.Load(key); ok {
		return v.(func(unsafe.Pointer) R)
	}
	v, _ := funcTramps.LoadOrStore(key, callFunc0[R])
	return v.(func(unsafe.Pointer) R)
}

func refTramp0[R any]() func(unsafe.Pointer) R {
	key := reflect.TypeOf((*(func() R))(nil)).Elem()
	if v, ok := refTramps.Load(key); ok {
		return v.(func(unsafe.Pointer) R)
	}
	v, _ := refTramps.LoadOrStore(key, callRef0[R])
	return v.(func(unsafe.Pointer) R)
}

func funcTramp1[A1, R any]() func(unsafe.Pointer, A1) R {
	key := reflect.TypeOf((*(func(A1) R))(nil)).Elem()
	if v, ok := funcTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1) R)
	}
	v, _ := funcTramps.LoadOrStore(key, callFunc1[A1, R])
	return v.(func(unsafe.Pointer, A1) R)
}

func refTramp1[A1, R any]() func(unsafe.Pointer, A1) R {
	key := reflect.TypeOf((*(func(A1) R))(nil)).Elem()
	if v, ok := refTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1) R)
	}
	v, _ := refTramps.LoadOrStore(key, callRef1[A1, R])
	return v.(func(unsafe.Pointer, A1) R)
}

func funcTramp2[A1, A2, R any]() func(unsafe.Pointer, A1, A2) R {
	key := reflect.TypeOf((*(func(A1, A2) R))(nil)).Elem()
	if v, ok := funcTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1, A2) R)
	}
	v, _ := funcTramps.LoadOrStore(key, callFunc2[A1, A2, R])
	return v.(func(unsafe.Pointer, A1, A2) R)
}

func refTramp2[A1, A2, R any]() func(unsafe.Pointer, A1, A2) R {
	key := reflect.TypeOf((*(func(A1, A2) R))(nil)).Elem()
	if v, ok := refTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1, A2) R)
	}
	v, _ := refTramps.LoadOrStore(key, callRef2[A1, A2, R])
	return v.(func(unsafe.Pointer, A1, A2) R)
}

func funcTramp3[A1, A2, A3, R any]() func(unsafe.Pointer, A1, A2, A3) R {
	key := reflect.TypeOf((*(func(A1, A2, A3) R))(nil)).Elem()
	if v, ok := funcTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1, A2, A3) R)
	}
	v, _ := funcTramps.LoadOrStore(key, callFunc3[A1, A2, A3, R])
	return v.(func(unsafe.Pointer, A1, A2, A3) R)
}

func refTramp3[A1, A2, A3, R any]() func(unsafe.Pointer, A1, A2, A3) R {
	key := reflect.TypeOf((*(func(A1, A2, A3) R))(nil)).Elem()
	if v, ok := refTramps.Load(key); ok {
		return v.(func(unsafe.Pointer, A1, A2, A3) R)
	}
	v, _ := refTramps.LoadOrStore(key, callRef3[A1, A2, A3, R])
	return v.(func(unsafe.Pointer, A1, A2, A3) R)
}
