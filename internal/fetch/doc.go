// Package fetch supplies parsed HTML documents to the rule engine.
//
// A source string is classified as a URL (http:// or https:// prefix)
// or a local file path and loaded accordingly. Every fetch returns
// metadata describing the source kind, the HTTP status when one was
// received, and a failure message when the fetch did not produce a
// document. All failures are terminal for the current run: the caller
// must not proceed to report generation.
package fetch
