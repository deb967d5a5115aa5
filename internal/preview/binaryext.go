package preview

import (
	"path/filepath"
	"strings"
)

// binaryExtensions is the embedded set of file extensions treated as binary
// for preview-suppression purposes, grouped by file family the way a
// file-icon catalog would. A missing extension is treated as previewable.
var binaryExtensions = map[string]bool{
	// Images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".tiff": true,
	// Audio / video
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
	".mp3": true, ".wav": true, ".flac": true, ".ogg": true,
	// Archives
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".bz2": true, ".xz": true, ".zst": true,
	// Documents with binary container formats
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	// Fonts
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true,
	// Compiled artifacts
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".o": true,
	".class": true, ".pyc": true, ".wasm": true,
}

// IsBinaryExtension reports whether path's extension names a known-binary
// format. Extension matching is case-insensitive; a path with no extension
// is never considered binary.
func IsBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return binaryExtensions[ext]
}
