/*
Package errors provides semantic error types for the dualstore routing layer.

The package defines the routing layer's error kinds with specific types that
can be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrUnknownEntityType = errors.New("unknown entity type")
	    ErrStoreUnavailable  = errors.New("store unavailable")
	    ErrNotFound          = errors.New("record not found")
	    ErrNoUpdatableFields = errors.New("no updatable fields")
	    ErrHasDependents     = errors.New("record has dependents")
	    ErrInvalidInput      = errors.New("invalid input")
	)

Usage:

	// Check error type
	rec, err := router.Update(ctx, "party-teacher", "7", payload)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Negative result, not a failure
	        return nil, nil
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("party-teacher", "7")
	err := errors.NewDependentsError("party-teacher", "7", counts)
	err := errors.NewStoreUnavailableError("document")

A DependentsError carries the per-table dependent counts so callers can choose
cascade, reassign, or nullify and retry the delete.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
