package geometry

import "errors"

var (
	// ErrEmptyPoints is returned when a bounding volume is built from no points
	ErrEmptyPoints = errors.New("at least one point is required")

	// ErrPointRange is returned when an index/count pair falls outside the point slice
	ErrPointRange = errors.New("point range out of bounds")

	// ErrInvalidProjection is returned for near/far/field-of-view values that
	// cannot form a projection matrix
	ErrInvalidProjection = errors.New("invalid projection parameters")

	// ErrUnsupportedVolume is returned by the dispatch functions for a volume
	// kind they do not know
	ErrUnsupportedVolume = errors.New("unsupported volume")
)
