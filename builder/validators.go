// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices" otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodBinomialTree.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateMax ensures that 'got' ≤ 'max'.
// Returns "<Method>: parameter must be ≤ <max>, got <got>: ErrBadSize" otherwise.
//
// Complexity: O(1) time and space.
func validateMax(method string, got, max int) error {
	if got > max {
		return builderErrorf(method, ErrBadSize, "parameter must be ≤ %d, got %d", max, got)
	}

	return nil
}
