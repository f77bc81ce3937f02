// core/feature/feature_test.go
package feature

import "testing"

func TestLocationValid(t *testing.T) {
	cases := []struct {
		loc  Location
		want bool
	}{
		{At(1), true},
		{At(0), false},
		{Between(2, 4), true},
		{Between(4, 2), false},
		{Location{}, false},
		{Between(-3, 5), true}, // leading overhang is Clip's job
		{Between(-3, 0), false},
	}
	for _, c := range cases {
		if got := c.loc.Valid(); got != c.want {
			t.Errorf("Valid(%+v) = %v, want %v", c.loc, got, c.want)
		}
	}
}

func TestLocationClip(t *testing.T) {
	cases := []struct {
		loc        Location
		n          int
		begin, end int
		ok         bool
	}{
		{Between(2, 4), 10, 2, 4, true},
		{Between(8, 15), 10, 8, 10, true},  // tail truncated
		{Between(-3, 5), 10, 1, 5, true},   // head truncated
		{Between(11, 15), 10, 0, 0, false}, // entirely past the end
		{At(7), 10, 7, 7, true},
		{At(10), 10, 10, 10, true},
		{Between(1, 1), 0, 0, 0, false}, // empty sequence
	}
	for _, c := range cases {
		begin, end, ok := c.loc.Clip(c.n)
		if ok != c.ok {
			t.Errorf("Clip(%+v, %d) ok = %v, want %v", c.loc, c.n, ok, c.ok)
			continue
		}
		if ok && (begin != c.begin || end != c.end) {
			t.Errorf("Clip(%+v, %d) = [%d,%d], want [%d,%d]", c.loc, c.n, begin, end, c.begin, c.end)
		}
	}
}
