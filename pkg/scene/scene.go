package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/camera"
	"github.com/philipparndt/gobound/pkg/geometry"
)

// ErrInvalidScene is returned when a scene fails validation
var ErrInvalidScene = errors.New("invalid scene")

// Vec3 is an [x, y, z] triple as written in scene files
type Vec3 [3]float64

// Vector converts the triple to a geometry vector
func (v Vec3) Vector() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

func (v Vec3) finite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Camera describes the viewer of a scene. FOV is given in degrees.
type Camera struct {
	Position Vec3    `yaml:"position" toml:"position"`
	Target   Vec3    `yaml:"target" toml:"target"`
	Up       *Vec3   `yaml:"up,omitempty" toml:"up,omitempty"`
	FOV      float64 `yaml:"fov" toml:"fov"`
	Near     float64 `yaml:"near" toml:"near"`
	Far      float64 `yaml:"far" toml:"far"`
	Aspect   float64 `yaml:"aspect" toml:"aspect"`
}

// Box is an axis-aligned box volume
type Box struct {
	Min Vec3 `yaml:"min" toml:"min"`
	Max Vec3 `yaml:"max" toml:"max"`
}

// Sphere is a sphere volume
type Sphere struct {
	Center Vec3    `yaml:"center" toml:"center"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// Entry is a named volume. Exactly one of Box, Sphere and Point is set.
type Entry struct {
	Name   string  `yaml:"name" toml:"name"`
	Box    *Box    `yaml:"box,omitempty" toml:"box,omitempty"`
	Sphere *Sphere `yaml:"sphere,omitempty" toml:"sphere,omitempty"`
	Point  *Vec3   `yaml:"point,omitempty" toml:"point,omitempty"`
}

// Kind names the shape of the entry
func (e Entry) Kind() string {
	switch {
	case e.Box != nil:
		return "box"
	case e.Sphere != nil:
		return "sphere"
	case e.Point != nil:
		return "point"
	}
	return ""
}

func (e Entry) finite() bool {
	switch {
	case e.Box != nil:
		return e.Box.Min.finite() && e.Box.Max.finite()
	case e.Sphere != nil:
		return e.Sphere.Center.finite() && !math.IsInf(e.Sphere.Radius, 0)
	case e.Point != nil:
		return e.Point.finite()
	}
	return true
}

// Volume returns the entry as a bounding volume. Points become boxes of
// zero size.
func (e Entry) Volume() geometry.Volume {
	switch {
	case e.Box != nil:
		return geometry.NewBoundingBox(e.Box.Min.Vector(), e.Box.Max.Vector())
	case e.Sphere != nil:
		return geometry.NewBoundingSphere(e.Sphere.Center.Vector(), e.Sphere.Radius)
	case e.Point != nil:
		p := e.Point.Vector()
		return geometry.NewBoundingBox(p, p)
	}
	return nil
}

// Scene is a camera and the volumes it looks at
type Scene struct {
	Camera  Camera  `yaml:"camera" toml:"camera"`
	Volumes []Entry `yaml:"volumes" toml:"volumes"`
}

const (
	defaultFOV    = 45
	defaultNear   = 0.1
	defaultFar    = 1000
	defaultAspect = 1
)

func (s *Scene) applyDefaults() {
	c := &s.Camera
	if c.Up == nil {
		up := Vec3{0, 1, 0}
		c.Up = &up
	}
	if c.FOV == 0 {
		c.FOV = defaultFOV
	}
	if c.Near == 0 {
		c.Near = defaultNear
	}
	if c.Far == 0 {
		c.Far = defaultFar
	}
	if c.Aspect == 0 {
		c.Aspect = defaultAspect
	}
}

// Validate checks the camera and every entry
func (s *Scene) Validate() error {
	c := s.Camera
	if !c.Position.finite() || !c.Target.finite() || (c.Up != nil && !c.Up.finite()) {
		return fmt.Errorf("%w: camera vectors must be finite", ErrInvalidScene)
	}
	if c.Position == c.Target {
		return fmt.Errorf("%w: camera position and target coincide", ErrInvalidScene)
	}
	if c.Up != nil {
		forward := c.Target.Vector().Sub(c.Position.Vector())
		up := c.Up.Vector()
		if forward.Cross(up).Length() <= 1e-9*forward.Length()*up.Length() {
			return fmt.Errorf("%w: camera up %v is zero or parallel to the view direction", ErrInvalidScene, *c.Up)
		}
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: camera fov %g must be between 0 and 180 degrees", ErrInvalidScene, c.FOV)
	}
	if !(c.Near > 0 && c.Far > c.Near) {
		return fmt.Errorf("%w: camera needs 0 < near < far, got near=%g far=%g", ErrInvalidScene, c.Near, c.Far)
	}
	if !(c.Aspect > 0) || math.IsInf(c.Aspect, 0) {
		return fmt.Errorf("%w: camera aspect %g must be positive", ErrInvalidScene, c.Aspect)
	}

	seen := make(map[string]bool, len(s.Volumes))
	for i, e := range s.Volumes {
		if e.Name == "" {
			return fmt.Errorf("%w: volume %d has no name", ErrInvalidScene, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate volume name %q", ErrInvalidScene, e.Name)
		}
		seen[e.Name] = true

		shapes := 0
		for _, set := range []bool{e.Box != nil, e.Sphere != nil, e.Point != nil} {
			if set {
				shapes++
			}
		}
		if shapes != 1 {
			return fmt.Errorf("%w: volume %q must have exactly one of box, sphere or point", ErrInvalidScene, e.Name)
		}

		if !e.finite() {
			return fmt.Errorf("%w: volume %q has a NaN or infinite coordinate", ErrInvalidScene, e.Name)
		}
		if e.Box != nil {
			for axis := 0; axis < 3; axis++ {
				if e.Box.Min[axis] > e.Box.Max[axis] {
					return fmt.Errorf("%w: volume %q has min > max on axis %d", ErrInvalidScene, e.Name, axis)
				}
			}
		}
		if e.Sphere != nil && (e.Sphere.Radius < 0 || math.IsNaN(e.Sphere.Radius)) {
			return fmt.Errorf("%w: volume %q has negative radius %g", ErrInvalidScene, e.Name, e.Sphere.Radius)
		}
	}
	return nil
}

// Viewer returns the orbit camera for the scene camera
func (s *Scene) Viewer() *camera.Camera {
	c := s.Camera
	position, target := c.Position.Vector(), c.Target.Vector()
	up := geometry.Vector3Up
	if c.Up != nil {
		up = c.Up.Vector()
	}
	return &camera.Camera{
		Position: position,
		Target:   target,
		Up:       up,
		FOV:      geometry.ToRadians(c.FOV),
		Near:     c.Near,
		Far:      c.Far,
		Distance: position.Distance(target),
	}
}

// Frustum returns the volume seen by the scene camera
func (s *Scene) Frustum() (geometry.BoundingFrustum, error) {
	f, err := s.Viewer().Frustum(s.Camera.Aspect)
	if err != nil {
		return geometry.BoundingFrustum{}, fmt.Errorf("failed to build camera frustum: %w", err)
	}
	return f, nil
}

// Classification is the result of testing one entry
type Classification struct {
	Name   string
	Kind   string
	Result geometry.ContainmentType
}

// Cull classifies every entry against the frustum
func (s *Scene) Cull(frustum geometry.BoundingFrustum) ([]Classification, error) {
	out := make([]Classification, 0, len(s.Volumes))
	for _, e := range s.Volumes {
		result, err := geometry.ContainsVolume(frustum, e.Volume())
		if err != nil {
			return nil, fmt.Errorf("failed to classify %q: %w", e.Name, err)
		}
		out = append(out, Classification{Name: e.Name, Kind: e.Kind(), Result: result})
	}
	return out, nil
}

// Side is the plane classification of one entry
type Side struct {
	Name   string
	Kind   string
	Result geometry.PlaneIntersectionType
}

// Classify reports which side of the plane every entry lies on
func (s *Scene) Classify(plane geometry.Plane) ([]Side, error) {
	out := make([]Side, 0, len(s.Volumes))
	for _, e := range s.Volumes {
		result, err := geometry.ClassifyPlane(e.Volume(), plane)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %q: %w", e.Name, err)
		}
		out = append(out, Side{Name: e.Name, Kind: e.Kind(), Result: result})
	}
	return out, nil
}

// Hit is a ray hit on a named entry
type Hit struct {
	Name     string
	Distance float64
	Point    geometry.Vector3
}

// Raycast returns the nearest entry hit by the ray. The boolean is false
// when nothing is hit.
func (s *Scene) Raycast(ray geometry.Ray) (Hit, bool, error) {
	var nearest Hit
	found := false
	for _, e := range s.Volumes {
		d, ok, err := geometry.RayDistance(ray, e.Volume())
		if err != nil {
			return Hit{}, false, fmt.Errorf("failed to cast against %q: %w", e.Name, err)
		}
		if ok && (!found || d < nearest.Distance) {
			nearest = Hit{Name: e.Name, Distance: d, Point: ray.At(d)}
			found = true
		}
	}
	return nearest, found, nil
}

// Bounds returns a box and a sphere around every entry
func (s *Scene) Bounds() (geometry.BoundingBox, geometry.BoundingSphere, error) {
	if len(s.Volumes) == 0 {
		return geometry.BoundingBox{}, geometry.BoundingSphere{}, fmt.Errorf("%w: scene has no volumes", geometry.ErrEmptyPoints)
	}

	var box geometry.BoundingBox
	var sphere geometry.BoundingSphere
	for i, e := range s.Volumes {
		b, err := geometry.BoundsOf(e.Volume())
		if err != nil {
			return geometry.BoundingBox{}, geometry.BoundingSphere{}, fmt.Errorf("failed to bound %q: %w", e.Name, err)
		}
		sp := geometry.BoundingSphereFromBox(b)
		if e.Sphere != nil {
			sp = geometry.NewBoundingSphere(e.Sphere.Center.Vector(), e.Sphere.Radius)
		}

		if i == 0 {
			box, sphere = b, sp
			continue
		}
		box = geometry.MergeBoundingBoxes(box, b)
		sphere = geometry.MergeBoundingSpheres(sphere, sp)
	}
	return box, sphere, nil
}
