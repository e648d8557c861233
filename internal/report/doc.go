// Package report renders check results for output.
//
// This package contains writers for different output formats:
//   - TextWriter: the bordered plain-text table (default)
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//   - JSONWriter: structured output for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed via MultiWriter for multi-destination
// output. Rendering is deterministic: the same report (with the same
// generation timestamp) always produces byte-identical output.
package report
