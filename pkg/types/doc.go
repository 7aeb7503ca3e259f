// Package types defines the values shared by every layer of wtcsvkit: the
// closed set of typed errors the codec returns, the Diff value produced by
// table comparison, and the diagnostic report produced by validation.
//
// Design goals:
//   - Errors are values with stable kinds; callers branch with errors.Is
//     against the Err* sentinels or errors.As against the concrete type.
//   - Payloads carry exactly what is needed to render a useful message.
//
// This package has no dependencies beyond the standard library.
package types
