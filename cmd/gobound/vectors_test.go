package main

import (
	"testing"

	"github.com/philipparndt/gobound/pkg/geometry"
)

func TestToVector(t *testing.T) {
	v, err := toVector("origin", []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("toVector failed: %v", err)
	}
	if v != geometry.NewVector3(1, 2, 3) {
		t.Errorf("toVector failed: got %v", v)
	}

	if _, err := toVector("origin", []float64{1, 2}); err == nil {
		t.Errorf("expected an error for two values")
	}
}

func TestToPlane(t *testing.T) {
	p, err := toPlane([]float64{0, 0, 2, 4})
	if err != nil {
		t.Fatalf("toPlane failed: %v", err)
	}
	if p != geometry.NewPlane(geometry.Vector3UnitZ, 2) {
		t.Errorf("toPlane failed: expected normalized plane, got %v", p)
	}

	if _, err := toPlane([]float64{0, 0, 0, 1}); err == nil {
		t.Errorf("expected an error for a zero normal")
	}
	if _, err := toPlane([]float64{0, 1, 0}); err == nil {
		t.Errorf("expected an error for three values")
	}
}
