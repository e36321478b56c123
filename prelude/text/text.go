// Package text provides the prelude's string functions and conversions to
// and from text.
package text

import "strings"

// Lines splits s at newlines. A trailing newline does not start a final
// empty line, and Lines("") is empty.
//
//	Lines("a\nb\n")  // ["a" "b"]
//	Lines("a\n\nb")  // ["a" "" "b"]
func Lines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Unlines joins lines with newlines. No newline is appended after the last
// line.
func Unlines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Words splits s around runs of white space. Words("") and Words("  ") are
// empty.
func Words(s string) []string {
	return strings.Fields(s)
}

// Unwords joins words with single spaces.
func Unwords(words []string) string {
	return strings.Join(words, " ")
}
