package disjointset_test

import (
	"testing"

	"github.com/katalvlaran/slink/disjointset"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// unionPlan is a random sequence of unions over n elements, encoded as raw ints
// that are folded into range [0,n) by the property body.
func unionPlan() (gopter.Gen, gopter.Gen) {
	return gen.IntRange(1, 64), gen.SliceOf(gen.IntRange(0, 1<<16))
}

// naive is a quadratic reference partition: label[i] is the set label of i.
type naive []int

func newNaive(n int) naive {
	l := make(naive, n)
	for i := range l {
		l[i] = i
	}

	return l
}

func (l naive) union(x, y int) {
	from, to := l[y], l[x]
	for i := range l {
		if l[i] == from {
			l[i] = to
		}
	}
}

func newIntForest(n int) *disjointset.Forest[int] {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	f, _ := disjointset.NewForest(elems)

	return f
}

// TestProperties_Forest checks the algebraic properties of the forest against random union plans.
func TestProperties_Forest(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)
	nGen, opsGen := unionPlan()

	properties.Property("fresh forest: every element is its own representative", prop.ForAll(
		func(n int) bool {
			f := newIntForest(n)
			for e := 0; e < n; e++ {
				if rep, err := f.FindSet(e); err != nil || rep != e {
					return false
				}
			}
			return f.Count() == n
		},
		nGen,
	))

	properties.Property("same-set agrees with a naive partition", prop.ForAll(
		func(n int, ops []int) bool {
			f := newIntForest(n)
			ref := newNaive(n)
			for i := 0; i+1 < len(ops); i += 2 {
				x, y := ops[i]%n, ops[i+1]%n
				if _, err := f.Union(x, y); err != nil {
					return false
				}
				ref.union(x, y)
			}
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					same, err := f.InSameSet(a, b)
					if err != nil || same != (ref[a] == ref[b]) {
						return false
					}
				}
			}
			return true
		},
		nGen, opsGen,
	))

	properties.Property("unions are monotonic: merged pairs stay merged", prop.ForAll(
		func(n int, ops []int) bool {
			f := newIntForest(n)
			var merged [][2]int
			for i := 0; i+1 < len(ops); i += 2 {
				x, y := ops[i]%n, ops[i+1]%n
				_, _ = f.Union(x, y)
				merged = append(merged, [2]int{x, y})
				for _, p := range merged {
					if same, _ := f.InSameSet(p[0], p[1]); !same {
						return false
					}
				}
			}
			return true
		},
		nGen, opsGen,
	))

	properties.Property("count and sizes are consistent with the partition", prop.ForAll(
		func(n int, ops []int) bool {
			f := newIntForest(n)
			for i := 0; i+1 < len(ops); i += 2 {
				_, _ = f.Union(ops[i]%n, ops[i+1]%n)
			}
			sets := f.Sets()
			if len(sets) != f.Count() {
				return false
			}
			total := 0
			for _, s := range sets {
				for _, e := range s {
					if size, _ := f.SizeOf(e); size != len(s) {
						return false
					}
				}
				total += len(s)
			}
			return total == n
		},
		nGen, opsGen,
	))

	properties.TestingRun(t)
}

// TestProperties_Core checks idempotence and the compression effect on raw handles.
func TestProperties_Core(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)
	nGen, opsGen := unionPlan()

	properties.Property("repeated FindSet is stable and never deepens a path", prop.ForAll(
		func(n int, ops []int) bool {
			c := disjointset.NewCore(n)
			for i := 0; i < n; i++ {
				c.MakeSet()
			}
			for i := 0; i+1 < len(ops); i += 2 {
				_, _ = c.Union(ops[i]%n, ops[i+1]%n)
			}
			for x := 0; x < n; x++ {
				before := c.Depth(x)
				r1, err1 := c.FindSet(x)
				mid := c.Depth(x)
				r2, err2 := c.FindSet(x)
				after := c.Depth(x)
				if err1 != nil || err2 != nil || r1 != r2 {
					return false
				}
				if mid > before || after > mid || mid > 1 {
					return false
				}
			}
			return true
		},
		nGen, opsGen,
	))

	properties.Property("transitivity of same-set", prop.ForAll(
		func(n int, ops []int) bool {
			f := newIntForest(n)
			for i := 0; i+1 < len(ops); i += 2 {
				_, _ = f.Union(ops[i]%n, ops[i+1]%n)
			}
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					ab, _ := f.InSameSet(a, b)
					if !ab {
						continue
					}
					for c := 0; c < n; c++ {
						bc, _ := f.InSameSet(b, c)
						ac, _ := f.InSameSet(a, c)
						if bc && !ac {
							return false
						}
					}
				}
			}
			return true
		},
		gen.IntRange(1, 16), opsGen,
	))

	properties.TestingRun(t)
}
