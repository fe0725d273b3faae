// Package pathenv holds the PATH merge logic for the persistent user-scope
// PATH variable.
package pathenv

import "strings"

// ListSeparator separates entries of the Windows PATH variable.
const ListSeparator = ";"

// Contains reports whether dir already occurs in pathValue. The test is a
// case-insensitive substring match, so "C:\npm" inside a longer entry also
// counts; that matches how the installed value was written in the first
// place.
func Contains(pathValue, dir string) bool {
	if dir == "" {
		return true
	}
	return strings.Contains(strings.ToLower(pathValue), strings.ToLower(dir))
}

// Merge prepends dir to pathValue unless it is already present. Prepending
// gives the new directory priority over any same-named commands later in
// PATH. The existing value is preserved byte for byte; the second result
// reports whether a write is needed.
func Merge(pathValue, dir string) (string, bool) {
	if Contains(pathValue, dir) {
		return pathValue, false
	}
	return dir + ListSeparator + pathValue, true
}
