package icon

import (
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// sniffSize is how many leading bytes the text sniff samples.
const sniffSize = 1024

// devicePath is the device directory for this platform, empty when the
// platform has none.
var devicePath = func() string {
	if runtime.GOOS == "windows" {
		return ""
	}
	return "/dev"
}()

// executableExts marks names that count as executable on platforms whose
// filesystems carry no execute bit.
var executableExts = map[string]bool{
	"exe": true,
	"bat": true,
	"cmd": true,
	"com": true,
}

// isExecutable applies the platform rule for executability: any execute
// permission bit on POSIX systems, the extension on Windows.
func isExecutable(info fs.FileInfo, name string) bool {
	if runtime.GOOS == "windows" {
		ext, ok := splitExt(name)
		return ok && executableExts[strings.ToLower(ext)]
	}
	return info.Mode().Perm()&0o111 != 0
}

// isTextFile samples up to sniffSize leading bytes and reports whether
// every byte is printable ASCII or ASCII whitespace. An empty file counts
// as text; any read failure counts as not text.
func isTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	for _, b := range buf[:n] {
		if !printableASCII(b) && !asciiSpace(b) {
			return false
		}
	}
	return true
}

func printableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

func asciiSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
