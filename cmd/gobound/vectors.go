package main

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/geometry"
)

func toVector(name string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs x,y,z, got %d values", name, len(values))
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}

func toPlane(values []float64) (geometry.Plane, error) {
	if len(values) != 4 {
		return geometry.Plane{}, fmt.Errorf("--plane needs a,b,c,d, got %d values", len(values))
	}
	p := geometry.NewPlaneFromComponents(values[0], values[1], values[2], values[3])
	if p.Normal.LengthSquared() == 0 {
		return geometry.Plane{}, fmt.Errorf("--plane normal must not be zero")
	}
	return p.Normalize(), nil
}
