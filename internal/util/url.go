package util

import "strings"

// IsUrlValid rejects request paths that are not rooted or carry literal
// parent-directory segments or NUL bytes. Percent-encoded traversal is
// handled later by the path resolver's containment check.
func IsUrlValid(v string) bool {
	if len(v) == 0 ||
		v[0] != '/' ||
		strings.Contains(v, "/../") ||
		strings.HasSuffix(v, "/..") ||
		strings.ContainsRune(v, 0) {
		return false
	}
	return true
}
