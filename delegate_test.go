package delegate_test

import (
	"sort"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/Pure-Company/delegate"
)

func add(x, y int) int { return x + y }

func diff(x, y int) int { return x - y }

func negate(x int) int { return -x }

func double(x int) int { return 2 * x }

type Counter struct {
	V int
}

func (c *Counter) Add(x int) int { return c.V + x }

func (c *Counter) Inc() int { c.V++; return c.V }

// Get has a value receiver: calling it through a delegate cannot mutate
// the bound counter.
func (c Counter) Get(x int) int { return c.V + x }

type point struct {
	X, Y int
}

// ============================================================================
// Zero value / nullability
// ============================================================================

func TestDelegate_ZeroValue_IsEmpty(t *testing.T) {
	var d delegate.Delegate2[int, int, int]

	assert.False(t, d.Callable())

	d2 := d // copy construction
	assert.True(t, d2.Equal(d))
	assert.False(t, d2.Callable())
}

func TestDelegate_EmptyCall_ReturnsZeroValue(t *testing.T) {
	var di delegate.Delegate1[int, int]
	assert.Equal(t, 0, di.Call(4))

	var db delegate.Delegate0[bool]
	assert.False(t, db.Call())

	var dp delegate.Delegate2[int, int, point]
	assert.Equal(t, point{}, dp.Call(1, 2))
}

func TestDelegate_Clear_BehavesLikeZeroValue(t *testing.T) {
	d := delegate.Bind2(add)
	assert.Equal(t, 5, d.Call(2, 3))

	d.Clear()

	var fresh delegate.Delegate2[int, int, int]
	assert.False(t, d.Callable())
	assert.True(t, d.Equal(fresh))
	assert.Equal(t, 0, d.Call(2, 3))
}

// ============================================================================
// Free functions
// ============================================================================

func TestBind_FreeFunction(t *testing.T) {
	d := delegate.Bind2(add)

	assert.True(t, d.Callable())
	assert.Equal(t, 5, d.Call(2, 3))

	// Copies are plain values.
	d2 := d
	assert.Equal(t, 7, d2.Call(3, 4))
	assert.True(t, d2.Equal(d))

	// Rebind the same delegate in place.
	d.SetFunc(diff)
	assert.Equal(t, 3, d.Call(5, 2))

	// The copy is unaffected.
	assert.Equal(t, 5, d2.Call(2, 3))
}

func TestBind_NilFunction_IsEmpty(t *testing.T) {
	d := delegate.Bind1[int, int](nil)

	assert.False(t, d.Callable())
	assert.Equal(t, 0, d.Call(3))
}

func TestBind_Closure(t *testing.T) {
	base := 10
	clo := func(x int) int { return base + x }

	d := delegate.Bind1(clo)
	assert.Equal(t, 13, d.Call(3))

	// The closure captures base by reference.
	base = 20
	assert.Equal(t, 23, d.Call(3))

	// Binding the same func value twice yields equal delegates.
	assert.True(t, delegate.Bind1(clo).Equal(d))
}

// ============================================================================
// Member functions
// ============================================================================

func TestBindMethod_ObservesMutation(t *testing.T) {
	c := Counter{V: 3}
	d := delegate.BindMethod1(&c, (*Counter).Add)

	assert.Equal(t, 7, d.Call(4))

	// The object is bound by reference, never snapshotted.
	c.V = 10
	assert.Equal(t, 14, d.Call(4))
}

func TestBindMethod_CanMutateThroughPointerReceiver(t *testing.T) {
	c := Counter{V: 0}
	d := delegate.BindMethod0(&c, (*Counter).Inc)

	assert.Equal(t, 1, d.Call())
	assert.Equal(t, 2, d.Call())
	assert.Equal(t, 2, c.V)
}

func TestBindMethod_ValueReceiver_CannotMutate(t *testing.T) {
	c := Counter{V: 6}
	d := delegate.BindMethod1(&c, (*Counter).Get)

	assert.Equal(t, 9, d.Call(3))
	assert.Equal(t, 15, d.Call(9))

	// Same state, same results, whether the receiver mutates or not.
	dp := delegate.BindMethod1(&c, (*Counter).Add)
	assert.Equal(t, dp.Call(3), d.Call(3))
}

func TestBindMethod_FreeFunctionWithObjectParameter(t *testing.T) {
	c := Counter{V: 6}
	d := delegate.BindMethod1(&c, addThrough)

	assert.Equal(t, 9, d.Call(3))

	c.V = 3
	assert.Equal(t, 12, d.Call(9))
}

func addThrough(c *Counter, x int) int { return c.V + x }

// ============================================================================
// Func variables bound by reference
// ============================================================================

func TestBindRef_ObservesReassignment(t *testing.T) {
	fn := negate
	d := delegate.BindRef1(&fn)

	assert.Equal(t, -3, d.Call(3))

	fn = double
	assert.Equal(t, 6, d.Call(3))
}

func TestBindRef_SameVariable_IsEqual(t *testing.T) {
	fn := negate
	a := delegate.BindRef1(&fn)
	b := delegate.BindRef1(&fn)

	assert.True(t, a.Equal(b))

	other := negate
	c := delegate.BindRef1(&other)
	assert.False(t, a.Equal(c))
}

// ============================================================================
// Raw trampolines
// ============================================================================

func rawAdd(data unsafe.Pointer, x int) int {
	return *(*int)(data) + x
}

func TestBindRaw_ForwardsOpaquePointer(t *testing.T) {
	base := 6
	d := delegate.BindRaw1(rawAdd, unsafe.Pointer(&base))

	assert.Equal(t, 9, d.Call(3))

	base = 3
	assert.Equal(t, 12, d.Call(9))
}

func TestBindRaw_NilTrampoline_IsEmpty(t *testing.T) {
	d := delegate.BindRaw1[int, int](nil, nil)
	assert.False(t, d.Callable())
}

// ============================================================================
// Equality
// ============================================================================

func TestEqual_SameFreeFunction(t *testing.T) {
	a := delegate.Bind2(add)
	b := delegate.Bind2(add)
	c := delegate.Bind2(diff)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(a))
}

func TestEqual_RepeatedBinds_ShareIdentity(t *testing.T) {
	// Every bind of one signature installs the same trampoline, so repeated
	// binds of the same target are fully interchangeable: mutually equal and
	// unordered with respect to each other.
	a := delegate.Bind2(add)
	b := delegate.Bind2(add)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))

	fn := func(x int) int { return x }
	ra := delegate.BindRef1(&fn)
	rb := delegate.BindRef1(&fn)

	assert.True(t, ra.Equal(rb))
	assert.False(t, ra.Less(rb))
	assert.False(t, rb.Less(ra))
}

func TestEqual_SameMethodSameObject(t *testing.T) {
	c1 := Counter{V: 1}
	c2 := Counter{V: 1}

	a := delegate.BindMethod1(&c1, (*Counter).Add)
	b := delegate.BindMethod1(&c1, (*Counter).Add)
	other := delegate.BindMethod1(&c2, (*Counter).Add)

	assert.True(t, a.Equal(b))
	// Identical state is not identity: a different object is a different
	// binding.
	assert.False(t, a.Equal(other))
	// Same object, different method.
	assert.False(t, a.Equal(delegate.BindMethod1(&c1, (*Counter).Get)))
}

func TestEqual_EmptyVersusBound(t *testing.T) {
	var empty delegate.Delegate2[int, int, int]
	bound := delegate.Bind2(add)

	assert.False(t, empty.Equal(bound))
	assert.False(t, bound.Equal(empty))
	assert.True(t, empty.Equal(delegate.Delegate2[int, int, int]{}))
}

// ============================================================================
// Ordering
// ============================================================================

func TestLess_TotalOrder(t *testing.T) {
	a := delegate.Bind2(add)
	b := delegate.Bind2(diff)

	// Irreflexive.
	assert.False(t, a.Less(a))

	// Antisymmetric: exactly one direction holds for unequal delegates.
	assert.NotEqual(t, a.Less(b), b.Less(a))
}

func TestLess_EmptySortsFirst(t *testing.T) {
	var empty delegate.Delegate2[int, int, int]
	bound := delegate.Bind2(add)

	assert.True(t, empty.Less(bound))
	assert.False(t, bound.Less(empty))
	assert.False(t, empty.Less(empty))
}

func TestLess_OrderedContainer(t *testing.T) {
	c := Counter{V: 1}

	distinct := []delegate.Delegate1[int, int]{
		delegate.Bind1(negate),
		delegate.Bind1(double),
		delegate.BindMethod1(&c, (*Counter).Add),
		{},
	}

	// Re-inserting equal bindings must not grow the set.
	entries := append([]delegate.Delegate1[int, int]{}, distinct...)
	entries = append(entries, delegate.Bind1(negate), delegate.BindMethod1(&c, (*Counter).Add))

	sort.Slice(entries, func(i, j int) bool { return entries[i].Less(entries[j]) })

	deduped := entries[:1]
	for _, e := range entries[1:] {
		if !deduped[len(deduped)-1].Equal(e) {
			deduped = append(deduped, e)
		}
	}

	assert.Len(t, deduped, len(distinct))
}

// ============================================================================
// Allocation behavior
// ============================================================================

var sink int

func TestCall_DoesNotAllocate(t *testing.T) {
	c := Counter{V: 3}
	free := delegate.Bind2(add)
	member := delegate.BindMethod1(&c, (*Counter).Add)

	allocs := testing.AllocsPerRun(100, func() {
		sink = free.Call(2, 3)
		sink = member.Call(4)
	})

	assert.Zero(t, allocs)
}

var (
	sinkD1 delegate.Delegate1[int, int]
	sinkD2 delegate.Delegate2[int, int, int]
)

func TestBind_DoesNotAllocate(t *testing.T) {
	c := Counter{V: 3}
	fn := func(x int) int { return x }

	// The first bind of a signature initializes its shared trampoline; get
	// that out of the way so the measurement covers steady-state binding.
	sinkD1 = delegate.Bind1(negate)
	sinkD2 = delegate.Bind2(add)
	sinkD1 = delegate.BindRef1(&fn)

	allocs := testing.AllocsPerRun(100, func() {
		sinkD2 = delegate.Bind2(add)
		sinkD1 = delegate.Bind1(negate)
		sinkD1 = delegate.BindRef1(&fn)
		sinkD1 = delegate.BindMethod1(&c, (*Counter).Add)
	})

	assert.Zero(t, allocs)
}

// ============================================================================
// Arity coverage
// ============================================================================

func TestDelegate0(t *testing.T) {
	n := 0
	fn := func() int { n++; return n }

	d := delegate.Bind0(fn)
	assert.Equal(t, 1, d.Call())
	assert.Equal(t, 2, d.Call())

	d.Clear()
	assert.Equal(t, 0, d.Call())
	assert.Equal(t, 2, n)
}

func clamp3(lo, hi, x int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func TestDelegate3(t *testing.T) {
	d := delegate.Bind3(clamp3)

	assert.Equal(t, 5, d.Call(0, 10, 5))
	assert.Equal(t, 10, d.Call(0, 10, 42))
	assert.True(t, d.Equal(delegate.Bind3(clamp3)))
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkCall_FreeFunction(b *testing.B) {
	d := delegate.Bind2(add)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sink = d.Call(2, 3)
	}
}

func BenchmarkCall_Method(b *testing.B) {
	c := Counter{V: 3}
	d := delegate.BindMethod1(&c, (*Counter).Add)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sink = d.Call(4)
	}
}

func BenchmarkCall_DirectFuncValue(b *testing.B) {
	fn := add
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sink = fn(2, 3)
	}
}
