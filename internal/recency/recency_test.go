package recency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ZeroCapacityPanics(t *testing.T) {
	require.Panics(t, func() { New[int](0) })
}

func TestInsert_WithinCapacity(t *testing.T) {
	s := New[int](2)
	s.Insert(5)
	require.Equal(t, 1, s.Size())
	require.True(t, s.Contains(5))
}

func TestInsert_OverCapacity_EvictsOldest(t *testing.T) {
	s := New[int](2)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)

	require.Equal(t, 2, s.Size())
	require.False(t, s.Contains(5))
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(1))
}

func TestInsert_Duplicate_DoesNotGrowSize(t *testing.T) {
	s := New[int](10)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)
	s.Insert(5)
	s.Insert(5)

	require.Equal(t, 3, s.Size())
}

// S3: cap=3. Insert 1,2,3,4 -> oldest->newest 2,3,4. Insert 2 -> 3,4,2.
// Insert 5 -> 4,2,5.
func TestForward_MatchesScenarioS3(t *testing.T) {
	s := New[int](3)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Insert(4)
	require.Equal(t, []int{2, 3, 4}, s.Forward())

	s.Insert(2)
	require.Equal(t, []int{3, 4, 2}, s.Forward())

	s.Insert(5)
	require.Equal(t, []int{4, 2, 5}, s.Forward())
}

func TestReverse_IsForwardReversed(t *testing.T) {
	s := New[int](3)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	fwd := s.Forward()
	rev := s.Reverse()
	require.Len(t, rev, len(fwd))
	for i, k := range fwd {
		require.Equal(t, k, rev[len(rev)-1-i])
	}
}

func TestContains(t *testing.T) {
	s := New[int](10)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)

	require.False(t, s.Contains(2))
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(5))
}

func TestRemove(t *testing.T) {
	s := New[int](10)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)

	require.False(t, s.Remove(2))
	require.Equal(t, 3, s.Size())

	require.True(t, s.Remove(1))
	require.Equal(t, 2, s.Size())

	require.False(t, s.Remove(1))
	require.Equal(t, 2, s.Size())
}

func TestPopOldest(t *testing.T) {
	s := New[int](10)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)

	require.Equal(t, 5, s.PopOldest())
	require.Equal(t, 2, s.Size())
}

func TestPopOldest_EmptyPanics(t *testing.T) {
	s := New[int](1)
	require.Panics(t, func() { s.PopOldest() })
}

// Reinserting an existing key moves it to the newest end, changing pop order.
func TestInsert_Reinsertion_ChangesPopOrder(t *testing.T) {
	s := New[int](10)
	s.Insert(5)
	s.Insert(3)
	s.Insert(1)
	s.Insert(5)

	require.Equal(t, 3, s.PopOldest())
	require.Equal(t, 2, s.Size())
}

func TestClear(t *testing.T) {
	s := New[int](10)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Size())
}

// P6: reinserting every key of a full set in order X yields forward order X.
func TestP6_FullReinsertionReproducesOrder(t *testing.T) {
	s := New[int](4)
	for _, k := range []int{1, 2, 3, 4} {
		s.Insert(k)
	}
	order := []int{3, 1, 4, 2}
	for _, k := range order {
		s.Insert(k)
	}
	require.Equal(t, order, s.Forward())
}

// Cloning then mutating one copy must not affect the other.
func TestClone_IsIndependent(t *testing.T) {
	a := New[int](10)
	a.Insert(5)
	a.Insert(6)
	a.Insert(7)

	b := a.Clone()
	a.Remove(6)
	b.Insert(8)

	require.Equal(t, 2, a.Size())
	require.Equal(t, 4, b.Size())
	require.Equal(t, []int{5, 6, 7}, b.Forward()[:3])
}
