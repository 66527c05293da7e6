package scoring

import "errors"

var (
	// ErrUnknownCriterion is returned when a requested criterion is not
	// one of the ten known identifiers. The call aborts before scoring.
	ErrUnknownCriterion = errors.New("unknown criterion")

	// ErrInvalidWeights is returned when a weight map has negative
	// entries, does not sum to 1.0 within tolerance, or lacks a weight
	// for a scored criterion. The call aborts before scoring.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrEmptyAnalysis is returned when a recommendation is requested
	// for an analysis with no scored criteria.
	ErrEmptyAnalysis = errors.New("empty analysis")
)
