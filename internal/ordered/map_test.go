package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := New[string, int](0)
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, []int{2, 1, 3}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := New[string, string](2)
	m.Set("x", "first")
	m.Set("y", "other")
	m.Set("x", "last")

	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, "last", v)
	assert.Equal(t, []string{"x", "y"}, m.Keys())
}

func TestMap_ZeroValueAndNil(t *testing.T) {
	var m Map[string, int]
	m.Set("k", 1)
	assert.True(t, m.Has("k"))

	var nilMap *Map[string, int]
	_, ok := nilMap.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
	for range nilMap.All() {
		t.Fatal("nil map should not yield")
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := New[int, int](0)
	for i := range 5 {
		m.Set(i, i*i)
	}

	var seen []int
	for k, v := range m.All() {
		seen = append(seen, v)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 4}, seen)
}

func TestMap_KeysAreCopies(t *testing.T) {
	m := New[string, int](0)
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOf(rapid.StringMatching(`[a-e]{1,2}`)).Draw(t, "keys")

		m := New[string, int](0)
		want := map[string]int{}
		var order []string
		for i, k := range keys {
			if _, seen := want[k]; !seen {
				order = append(order, k)
			}
			want[k] = i
			m.Set(k, i)
		}

		if m.Len() != len(want) {
			t.Fatalf("len = %d, want %d", m.Len(), len(want))
		}
		got := m.Keys()
		for i := range order {
			if got[i] != order[i] {
				t.Fatalf("key %d = %q, want %q", i, got[i], order[i])
			}
		}
		for k, v := range want {
			if gv, ok := m.Get(k); !ok || gv != v {
				t.Fatalf("Get(%q) = %d,%v want %d", k, gv, ok, v)
			}
		}
	})
}
