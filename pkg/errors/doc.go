// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeResourceNotFound,
//	    "failed to read items",
//	    cause,
//	    map[string]any{
//	        "path": "pc/1.8/items.json",
//	    },
//	)
//
// Callers classify errors with CodeOf or IsCode, which look through
// fmt.Errorf %w chains.
package errors
