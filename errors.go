// errors.go — sentinel errors for the mcda package.
//
// Error policy (matches the teacher's builder/core convention):
//   • Only sentinel variables are exposed for errors.Is matching.
//   • Sentinels are never wrapped with formatted strings at definition site.
//   • InvalidModelError attaches detail via %w and a human-readable message.
//   • NewModel is the only function that returns an error; Pareto filtering
//     and t-ordering return none (spec: "no recoverable errors occur during
//     Pareto filtering or t-ordering"). The query methods panic with
//     ErrNotNormalized only when called on a zero-value Model.
package mcda

import (
	"errors"
	"fmt"
)

// Sentinels identifying the InvalidModelError sub-reason. Check with
// errors.Is(err, mcda.ErrMissingColumn), etc.
var (
	// ErrMissingColumn indicates a declared criterion has no column in the
	// alternative matrix.
	ErrMissingColumn = errors.New("mcda: missing column for declared criterion")

	// ErrWrongValueType indicates a cell's representation does not match
	// its criterion's kind (e.g. a category cell for an Absolute criterion).
	ErrWrongValueType = errors.New("mcda: wrong value type for criterion kind")

	// ErrOutOfRange indicates an absolute criterion cell outside [min, max].
	ErrOutOfRange = errors.New("mcda: value out of range for absolute criterion")

	// ErrUnknownCategory indicates an ordinal criterion cell not in Values.
	ErrUnknownCategory = errors.New("mcda: unknown category for ordinal criterion")

	// ErrUndeclaredCriterion indicates a preference references a criterion
	// not present in the model's declared criteria.
	ErrUndeclaredCriterion = errors.New("mcda: preference references an undeclared criterion")

	// ErrCyclicPreferences indicates the preference graph contains a cycle
	// that mixes at least one strict edge with equivalence edges.
	ErrCyclicPreferences = errors.New("mcda: cyclic preference graph contains a strict edge")

	// ErrDuplicateCriterion indicates two criteria share a name.
	ErrDuplicateCriterion = errors.New("mcda: duplicate criterion name")

	// ErrDuplicateAlternative indicates two alternatives share an identifier.
	ErrDuplicateAlternative = errors.New("mcda: duplicate alternative identifier")

	// ErrContradictoryPair indicates both a strict preference and an
	// equivalence were asserted between the same unordered pair of criteria.
	ErrContradictoryPair = errors.New("mcda: contradictory strict and equivalence preference")

	// ErrNotNormalized indicates a caller asked for Pareto or t-ordering
	// results from a model whose normalization has not completed. NewModel
	// normalizes eagerly, so this only fires against a zero-value Model.
	ErrNotNormalized = errors.New("mcda: model has not been normalized")
)

// InvalidModelError is returned by NewModel when construction fails. It
// wraps one of the sentinels above and carries a descriptive message
// (offending values, a rendered cycle path, ...).
type InvalidModelError struct {
	Reason  error
	Message string
}

// Error implements the error interface.
func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("mcda: invalid model: %s", e.Message)
}

// Unwrap allows errors.Is(err, mcda.ErrXxx) to see through InvalidModelError.
func (e *InvalidModelError) Unwrap() error { return e.Reason }

// invalidModel constructs an InvalidModelError wrapping reason with a
// formatted message, mirroring the teacher's builderErrorf convention.
func invalidModel(reason error, format string, args ...interface{}) error {
	return &InvalidModelError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
