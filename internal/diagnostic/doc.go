// Package diagnostic collects structured errors and warnings produced while
// validating conversion catalogs.
//
// Key capabilities:
//   - Per-strategy, per-template error and warning reports
//   - Stable codes for tests and tooling
//   - A combined error for callers that only need pass/fail
package diagnostic
