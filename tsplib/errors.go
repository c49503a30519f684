package tsplib

import "errors"

var (
	// ErrMissingDimension indicates the header has no DIMENSION entry.
	ErrMissingDimension = errors.New("tsplib: missing DIMENSION")

	// ErrBadDimension indicates DIMENSION is not a positive integer.
	ErrBadDimension = errors.New("tsplib: DIMENSION must be a positive integer")

	// ErrMissingSection indicates the coordinate or tour section marker was not found.
	ErrMissingSection = errors.New("tsplib: missing section marker")

	// ErrShortSection indicates fewer data lines than DIMENSION announced.
	ErrShortSection = errors.New("tsplib: section ended before DIMENSION entries")

	// ErrBadNodeLine indicates a coordinate line is not "id x y".
	ErrBadNodeLine = errors.New("tsplib: malformed node line")

	// ErrUnsupportedWeightType indicates a metric other than EUC_2D.
	ErrUnsupportedWeightType = errors.New("tsplib: only EUC_2D instances are supported")

	// ErrBadTourLine indicates a tour entry is not an integer city id.
	ErrBadTourLine = errors.New("tsplib: malformed tour line")
)
