package dimension

import "github.com/pkg/errors"

// The resolvers are pure functions, so every failure is a caller contract
// violation reported synchronously. Nothing is retried and no default
// geometry is substituted. Callers match with errors.Is against these
// sentinels; the wrapped message carries the offending values.
var (
	// An out-of-domain scalar: non-positive radius, NaN or Inf anywhere.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// The center coincides with a boundary point, or a derived radius
	// collapses to zero.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// The two-line convention received parallel or coincident lines, which
	// have no intersection to measure an angle at.
	ErrParallelLines = errors.New("parallel lines")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidGeometry, format, args...)
}

func degeneratef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDegenerateGeometry, format, args...)
}

func parallelf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParallelLines, format, args...)
}
