// Package main provides the entry point for the a11yscan CLI.
//
// a11yscan performs a heuristic accessibility review of an HTML page
// (fetched from a URL or read from a local file) and writes a tabular
// report of likely WCAG-related issues.
//
// Usage:
//
//	a11yscan check <url-or-file>
//	a11yscan check
//
// See --help for all available options.
package main

// main is the entry point for a11yscan.
func main() {
	Execute()
}
