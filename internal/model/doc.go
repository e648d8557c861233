// Package model defines the core data structures shared across the
// application: findings produced by the accessibility checks, fetch
// metadata describing the document source, and the assembled report.
//
// Design decision: We separate data structures from the rule engine
// (internal/checker) and the renderers (internal/report) so that new
// output formats can be added without modifying the checks, and vice
// versa.
package model
