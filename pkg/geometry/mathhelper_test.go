package geometry

import (
	"math"
	"testing"
)

func TestScalarInterpolation(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Lerp", Lerp(2, 6, 0.25), 3},
		{"LerpPrecise", LerpPrecise(2, 6, 1), 6},
		{"Hermite start", Hermite(1, 5, 3, -2, 0), 1},
		{"Hermite end", Hermite(1, 5, 3, -2, 1), 3},
		{"SmoothStep mid", SmoothStep(0, 10, 0.5), 5},
		{"SmoothStep clamps", SmoothStep(0, 10, 2), 10},
		{"CatmullRom start", CatmullRom(0, 1, 2, 3, 0), 1},
		{"CatmullRom end", CatmullRom(0, 1, 2, 3, 1), 2},
		{"Barycentric", Barycentric(0, 10, 20, 0.5, 0.25), 10},
		{"Clamp low", Clamp(-1, 0, 1), 0},
		{"Clamp high", Clamp(7, 0, 1), 1},
		{"Distance", Distance(-2, 3), 5},
		{"ToDegrees", ToDegrees(math.Pi), 180},
		{"ToRadians", ToRadians(90), PiOver2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-10 {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{TwoPi + 0.5, 0.5},
		{-TwoPi - 0.5, -0.5},
	}

	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) should be true", v)
		}
	}
	for _, v := range []int{0, -2, 3, 1000} {
		if IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) should be false", v)
		}
	}
}

func TestVector2Operations(t *testing.T) {
	a := NewVector2(3, 4)

	if got := a.Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Length failed: expected 5, got %v", got)
	}
	if got, want := a.Transform(CreateTranslation(NewVector3(1, 1, 9))), NewVector2(4, 5); got != want {
		t.Errorf("Transform failed: expected %v, got %v", want, got)
	}
	if got, want := a.Reflect(NewVector2(0, 1)), NewVector2(3, -4); got != want {
		t.Errorf("Reflect failed: expected %v, got %v", want, got)
	}
}

func TestVector4Transform(t *testing.T) {
	v := NewVector4(1, 2, 3, 1)
	m := CreateTranslation(NewVector3(1, 1, 1))

	if got, want := v.Transform(m), NewVector4(2, 3, 4, 1); got != want {
		t.Errorf("Transform failed: expected %v, got %v", want, got)
	}

	direction := NewVector4(1, 2, 3, 0)
	if got := direction.Transform(m); got != direction {
		t.Errorf("w=0 should ignore translation, got %v", got)
	}
}
