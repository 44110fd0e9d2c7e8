// Package icon classifies filesystem entries into display icons.
//
// Classification is a fixed precedence chain: links and directories first,
// then well-known names, then the extension table, then fallbacks for
// hidden, executable and plain-text files. It never fails; anything
// unreadable or unrecognized ends up with the Unknown icon.
package icon

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Icons for entry kinds not covered by the lookup tables.
const (
	Directory     = "📁"
	LinkDirectory = "🔗📁"
	Link          = "🔗"
	Config        = "⚙️"
	Executable    = "💾"
	Text          = "📝"
	Unknown       = "❓"
	Hardware      = "🔧"
)

// For returns the display icon for the entry at path.
func For(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		return Unknown
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return linkIcon(path)
	}
	if info.IsDir() {
		return Directory
	}

	name := filepath.Base(path)
	if icon, ok := forName(name); ok {
		return icon
	}
	if ext, ok := splitExt(name); ok {
		if icon, ok := extensionIcons[strings.ToLower(ext)]; ok {
			return icon
		}
	}
	if strings.HasPrefix(name, ".") {
		return Config
	}
	if isExecutable(info, name) {
		return Executable
	}
	if isTextFile(path) {
		return Text
	}
	return Unknown
}

// ForDevice returns the icon for an entry of the device directory.
// Regular files there are matched against the exact device table, then the
// prefix table, and fall back to the generic hardware icon.
func ForDevice(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		return Unknown
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return linkIcon(path)
	}
	if info.IsDir() {
		return Directory
	}

	name := filepath.Base(path)
	if icon, ok := devExactIcons[name]; ok {
		return icon
	}
	for _, p := range devPrefixIcons {
		if strings.HasPrefix(name, p.prefix) {
			return p.icon
		}
	}
	return Hardware
}

// IsDeviceDir reports whether dir is the platform's device directory.
func IsDeviceDir(dir string) bool {
	return devicePath != "" && dir == devicePath
}

// linkIcon distinguishes links to directories from links to anything else.
// A broken link counts as a plain link.
func linkIcon(path string) string {
	if target, err := os.Stat(path); err == nil && target.IsDir() {
		return LinkDirectory
	}
	return Link
}

// forName matches well-known file names: exact names first, then the
// system files matched by prefix.
func forName(name string) (string, bool) {
	if icon, ok := exactNameIcons[name]; ok {
		return icon, true
	}
	for _, p := range namePrefixIcons {
		if strings.HasPrefix(name, p.prefix) {
			return p.icon, true
		}
	}
	return "", false
}

// splitExt returns the text after the last dot. Unlike sort extensions, a
// leading dot counts here, so a file named ".mp3" still classifies as
// audio.
func splitExt(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}
