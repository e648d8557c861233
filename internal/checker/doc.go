// Package checker implements the accessibility rule engine.
//
// Each check is a pure function over a parsed HTML document that
// returns zero or more findings; an empty result is the normal "no
// issue" case, never an error. The Engine runs the checks in a fixed
// order and assembles the findings into a model.Report, synthesizing a
// single "no issues" record for every category whose check fired
// nothing.
//
// The checks are heuristic. They flag likely WCAG problems detectable
// from static markup alone and make no claim of full WCAG or ADA
// compliance.
package checker
