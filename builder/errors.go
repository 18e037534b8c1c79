// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Implementations attach context via %w wrapping, never by stringifying
//     parameters into the sentinel itself.

package builder

import "errors"

var (
	// ErrTreeNil indicates a nil tree pointer was passed to a constructor.
	ErrTreeNil = errors.New("builder: tree is nil")

	// ErrTooFewNodes indicates a size parameter (n, leaves, k, depth) is
	// smaller than the allowed minimum for the requested shape.
	ErrTooFewNodes = errors.New("builder: parameter too small")
)
