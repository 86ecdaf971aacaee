package world

import "testing"

func TestDirection_CodeRoundTrip(t *testing.T) {
	for _, d := range AllDirections() {
		got, ok := ParseDirection(d.Code())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, true)", d.Code(), got, ok, d)
		}
	}
}

func TestParseDirection_CaseInsensitive(t *testing.T) {
	if d, ok := ParseDirection("D"); !ok || d != Down {
		t.Errorf("ParseDirection(\"D\") = (%v, %v), want (Down, true)", d, ok)
	}
	for _, bad := range []string{"", "x", "lu", "left"} {
		if _, ok := ParseDirection(bad); ok {
			t.Errorf("ParseDirection(%q) ok = true, want false", bad)
		}
	}
}

func TestDirection_Offset(t *testing.T) {
	want := map[Direction]int{Left: -1, Up: -7, Right: 1, Down: 7}
	for d, off := range want {
		if got := d.Offset(7); got != off {
			t.Errorf("%v.Offset(7) = %d, want %d", d, got, off)
		}
	}
}
