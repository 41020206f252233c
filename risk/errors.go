package risk

import "errors"

// Failure stages of a time bump. Every error returned by BumpTime.Apply
// wraps exactly one of these; match with errors.Is.
var (
	// ErrDependency: the dependency model is missing or inconsistent.
	ErrDependency = errors.New("dependency model unavailable")

	// ErrResolution: the pricing context cannot supply a spot level or
	// forward curve for a requested identifier.
	ErrResolution = errors.New("market resolution failed")

	// ErrConstruction: the fixing table cannot be built from the scanned
	// fixings.
	ErrConstruction = errors.New("fixing table construction failed")

	// ErrRestatement: an instrument rejected the fixing table.
	ErrRestatement = errors.New("portfolio restatement failed")

	// ErrBumpApplication: the model rejected the spot date bump, or the
	// bump request itself is invalid.
	ErrBumpApplication = errors.New("bump application failed")
)
