//go:build windows

package entry

import "golang.org/x/sys/windows"

// hiddenByAttr reports whether the file carries the Windows hidden
// attribute. Dotfile naming alone does not mark files hidden there.
func hiddenByAttr(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
