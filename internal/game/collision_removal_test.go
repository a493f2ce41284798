package game

import (
	"reflect"
	"testing"
)

func TestRemoveAt_PreservesOrder(t *testing.T) {
	items := []string{"a0", "a1", "a2", "a3", "a4"}
	got := removeAt(items, []int{1, 3})
	want := []string{"a0", "a2", "a4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRemoveAt_Table(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		idx  []int
		want []int
	}{
		{"none", []int{0, 1, 2}, nil, []int{0, 1, 2}},
		{"first", []int{0, 1, 2}, []int{0}, []int{1, 2}},
		{"last", []int{0, 1, 2}, []int{2}, []int{0, 1}},
		{"adjacent", []int{0, 1, 2, 3}, []int{1, 2}, []int{0, 3}},
		{"all", []int{0, 1, 2}, []int{0, 1, 2}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]int(nil), tt.in...)
			got := removeAt(in, tt.idx)
			if len(got) != len(tt.want) {
				t.Fatalf("len=%d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestIndexSet_SortedUnique(t *testing.T) {
	s := indexSet{}
	for _, i := range []int{4, 1, 4, 0, 1} {
		s.add(i)
	}
	got := s.sorted()
	want := []int{0, 1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRemoveAt_ZeroesTail(t *testing.T) {
	a, b, c := &Unit{label: "E0"}, &Unit{label: "E1"}, &Unit{label: "E2"}
	units := []*Unit{a, b, c}
	backing := units[:3]
	units = removeAt(units, []int{0})
	if len(units) != 2 || units[0] != b || units[1] != c {
		t.Fatalf("unexpected survivors %v", units)
	}
	if backing[2] != nil {
		t.Fatal("vacated slot should be cleared")
	}
}
