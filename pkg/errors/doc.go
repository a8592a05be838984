// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to collect service states",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "probe": "services",
//	        "units": units,
//	    },
//	)
package errors
