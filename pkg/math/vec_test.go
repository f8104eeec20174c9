package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}

	// Swapping operands flips the sign.
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("Vec3.Cross() reversed = %v, want {0 0 -1}", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("zero Vec3.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}

	if got, want := a.Min(b), (Vec3{1, -1, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 3, 6}
	if got := a.Distance(b); got < 6.9999 || got > 7.0001 {
		t.Errorf("Vec3.Distance() = %v, want 7", got)
	}
}

func TestVec3Length_Range(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float32
	}{
		{"unit", Vec3{0, 0, 1}, 1},
		{"large", Vec3{3e38, 0, 0}, 3e38},
		{"large diagonal", Vec3{3e37, 4e37, 0}, 5e37},
		{"subnormal", Vec3{0, 0, 1e-40}, 1e-40},
		{"tiny diagonal", Vec3{3e-30, 0, 4e-30}, 5e-30},
		{"zero", Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Length()
			if tt.want == 0 {
				if got != 0 {
					t.Errorf("Length() = %v, want 0", got)
				}
				return
			}
			if rel := (got - tt.want) / tt.want; rel < -1e-5 || rel > 1e-5 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalize_Range(t *testing.T) {
	for _, v := range []Vec3{{0, 0, 1e38}, {0, 0, 1e-40}, {1e-30, 1e-30, 0}} {
		l := v.Normalize().Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("Vec3%v.Normalize().Length() = %v, want ~1", v, l)
		}
	}
}
