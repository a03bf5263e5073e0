package pricing

import "errors"

// Kind is the machine-readable classification of a resolution failure.
type Kind string

const (
	// Configuration failures: the package's pricing table cannot answer the query.
	KindNoMatchingTier        Kind = "NoMatchingTier"
	KindNoMatchingPeriod      Kind = "NoMatchingPeriod"
	KindNoPriceForCombination Kind = "NoPriceForCombination"

	// Reference failures: the linked package was deleted or edited since linking.
	KindPackageNotFound       Kind = "PackageNotFound"
	KindPackageVersionChanged Kind = "PackageVersionChanged"
)

// ResolutionError is a typed failure from any resolution stage. Stages never
// swallow each other's errors; whichever stage fails is what the caller sees.
type ResolutionError struct {
	Kind Kind
	msg  string
}

func NewResolutionError(kind Kind, msg string) *ResolutionError {
	return &ResolutionError{Kind: kind, msg: msg}
}

func (e *ResolutionError) Error() string {
	return string(e.Kind) + ": " + e.msg
}

func IsKind(err error, kind Kind) bool {
	var e *ResolutionError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the failure kind, or "" for untyped errors.
func KindOf(err error) Kind {
	var e *ResolutionError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
