package geometry

// ContainmentType describes how one volume relates to another
type ContainmentType int

const (
	// Disjoint means the volumes do not touch
	Disjoint ContainmentType = iota
	// Contains means the second volume lies completely inside the first
	Contains
	// Intersects means the volumes partially overlap
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Contains:
		return "contains"
	case Intersects:
		return "intersects"
	default:
		return "unknown"
	}
}

// PlaneIntersectionType describes on which side of a plane something lies
type PlaneIntersectionType int

const (
	// Front is the side the plane normal points to
	Front PlaneIntersectionType = iota
	// Back is the side opposite the normal
	Back
	// Intersecting means the plane cuts through
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "front"
	case Back:
		return "back"
	case Intersecting:
		return "intersecting"
	default:
		return "unknown"
	}
}
