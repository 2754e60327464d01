package average

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when an aggregate is asked to reduce an
	// empty set of colors.
	ErrEmptyInput = errors.New("empty input")

	// ErrAverageOutOfRange is returned when an averaged channel or
	// component does not fit the range of its color model.
	ErrAverageOutOfRange = errors.New("average out of range")

	// ErrAngleOutOfRange is returned when a mean hue is not in [0, 360).
	ErrAngleOutOfRange = errors.New("angle out of range")

	// ErrRatioOutOfRange is returned when a mix ratio is not in [0, 1].
	ErrRatioOutOfRange = errors.New("ratio out of range")

	// ErrUnexpected covers any other failure, such as a non-finite
	// intermediate value.
	ErrUnexpected = errors.New("unexpected fault")
)
