//go:build !windows

package entry

// hiddenByAttr is a no-op outside Windows; dot-prefix filtering in
// Discover covers the Unix convention.
func hiddenByAttr(string) bool { return false }
