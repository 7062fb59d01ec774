// Package slugs parses the feature marker carried by source directory names.
//
// A source directory advertises the features it belongs to with a leading
// brace group: "{mac,linux}app" declares the slugs "mac" and "linux".
package slugs

import "strings"

// Extract returns the slugs declared by a directory name and whether the name
// carries a marker at all. The marker must open at the first byte and close at
// the first '}'; segments are returned in order and may be empty.
func Extract(name string) ([]string, bool) {
	open := strings.IndexByte(name, '{')
	end := strings.IndexByte(name, '}')
	if open != 0 || end < open {
		return nil, false
	}
	return strings.Split(name[open+1:end], ","), true
}

// Contains reports whether slug is one of slugs.
func Contains(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}
