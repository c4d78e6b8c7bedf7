package labels

import "testing"

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		rows  [][]int32
	}{
		{"no names", nil, nil},
		{"empty name", []string{""}, nil},
		{"duplicate names", []string{"a", "a"}, nil},
		{"ragged row", []string{"a", "b"}, [][]int32{{1, 2}, {3}}},
		{"duplicate rows", []string{"a"}, [][]int32{{1}, {2}, {1}}},
	}

	for _, tt := range tests {
		if _, err := New(tt.names, tt.rows); err == nil {
			t.Errorf("%s: New() succeeded, want error", tt.name)
		}
	}
}

func TestNewAndAccessors(t *testing.T) {
	l, err := New([]string{"structure", "atom"}, [][]int32{{0, 0}, {0, 1}, {1, 0}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := l.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := l.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}

	names := l.Names()
	if len(names) != 2 || names[0] != "structure" || names[1] != "atom" {
		t.Errorf("Names() = %v, want [structure atom]", names)
	}

	row := l.Row(1)
	if row[0] != 0 || row[1] != 1 {
		t.Errorf("Row(1) = %v, want [0 1]", row)
	}

	if pos, ok := l.Position("atom"); !ok || pos != 1 {
		t.Errorf("Position(atom) = %d, %v, want 1, true", pos, ok)
	}
	if _, ok := l.Position("missing"); ok {
		t.Error("Position(missing) succeeded, want miss")
	}
}

func TestColumn(t *testing.T) {
	l, err := New([]string{"structure", "atom"}, [][]int32{{5, 0}, {2, 1}, {5, 2}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	col, err := l.Column("structure")
	if err != nil {
		t.Fatalf("Column(structure) failed: %v", err)
	}
	want := []int32{5, 2, 5}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("Column(structure)[%d] = %d, want %d", i, col[i], want[i])
		}
	}

	if _, err := l.Column("missing"); err == nil {
		t.Error("Column(missing) succeeded, want error")
	}
}

func TestRowPosition(t *testing.T) {
	l, err := New([]string{"a", "b"}, [][]int32{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if i, ok := l.RowPosition([]int32{3, 4}); !ok || i != 1 {
		t.Errorf("RowPosition([3 4]) = %d, %v, want 1, true", i, ok)
	}
	if _, ok := l.RowPosition([]int32{4, 3}); ok {
		t.Error("RowPosition([4 3]) succeeded, want miss")
	}
	if _, ok := l.RowPosition([]int32{1}); ok {
		t.Error("RowPosition with wrong width succeeded, want miss")
	}
}

func TestSortedUnique(t *testing.T) {
	l, err := New([]string{"structure", "atom"}, [][]int32{{5, 0}, {2, 0}, {5, 1}, {2, 1}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	unique, err := l.SortedUnique("structure")
	if err != nil {
		t.Fatalf("SortedUnique() failed: %v", err)
	}
	if len(unique) != 2 || unique[0] != 2 || unique[1] != 5 {
		t.Errorf("SortedUnique(structure) = %v, want [2 5]", unique)
	}
}

func TestUniquePairs(t *testing.T) {
	l, err := New([]string{"sample", "structure", "atom"}, [][]int32{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
		{3, 1, 2}, // duplicate (structure, atom) pair
		{4, 0, 0},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	pairs, err := l.UniquePairs("structure", "atom")
	if err != nil {
		t.Fatalf("UniquePairs() failed: %v", err)
	}

	want := [][2]int32{{0, 0}, {0, 1}, {1, 0}, {1, 2}}
	if len(pairs) != len(want) {
		t.Fatalf("UniquePairs() returned %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("UniquePairs()[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}

	if _, err := l.UniquePairs("structure", "missing"); err == nil {
		t.Error("UniquePairs with missing column succeeded, want error")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New([]string{"x"}, [][]int32{{1}, {2}})
	b, _ := New([]string{"x"}, [][]int32{{1}, {2}})
	c, _ := New([]string{"y"}, [][]int32{{1}, {2}})
	d, _ := New([]string{"x"}, [][]int32{{1}, {3}})

	if !a.Equal(a) {
		t.Error("a.Equal(a) = false")
	}
	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true")
	}
	if a.Equal(c) {
		t.Error("a.Equal(c) = true, want false (different names)")
	}
	if a.Equal(d) {
		t.Error("a.Equal(d) = true, want false (different rows)")
	}
	if a.Equal(nil) {
		t.Error("a.Equal(nil) = true, want false")
	}
}

func TestSingle(t *testing.T) {
	l := Single()
	if l.Len() != 1 || l.Size() != 1 {
		t.Errorf("Single() has %d rows, %d columns, want 1, 1", l.Len(), l.Size())
	}
	if row := l.Row(0); row[0] != 0 {
		t.Errorf("Single().Row(0) = %v, want [0]", row)
	}
}
