// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "validation run exceeded deadline",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "workspace": dir,
//	        "checks": len(names),
//	    },
//	)
package errors
