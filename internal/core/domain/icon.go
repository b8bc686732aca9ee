package domain

import (
	"path/filepath"
	"strings"
)

// FileIcon returns a generic icon name for a file path, keyed on the
// extension. Unknown extensions map to "file".
func FileIcon(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	// Documents
	case "txt", "md", "log":
		return "file-text"
	case "pdf":
		return "file-pdf"
	case "doc", "docx":
		return "file-word"
	case "xls", "xlsx":
		return "file-excel"
	case "ppt", "pptx":
		return "file-powerpoint"

	// Images
	case "jpg", "jpeg", "png", "gif", "bmp", "svg", "webp":
		return "file-image"

	// Videos
	case "mp4", "avi", "mkv", "mov", "wmv", "flv":
		return "file-video"

	// Audio
	case "mp3", "wav", "flac", "aac", "ogg", "wma":
		return "file-audio"

	// Archives
	case "zip", "rar", "7z", "tar", "gz", "bz2":
		return "file-archive"

	// Code
	case "go", "rs", "py", "js", "ts", "jsx", "tsx", "java", "c", "cpp", "h", "hpp",
		"html", "css", "json", "xml", "yaml", "yml":
		return "file-code"

	// Executables
	case "exe", "msi", "bat", "cmd", "ps1", "sh", "desktop":
		return "file-executable"

	default:
		return "file"
	}
}
