package domain

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions lists the upload extensions accepted for project files.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded file name to a flat ASCII name that is
// safe to join with the upload directory. It returns "" when nothing usable
// is left.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// IsAllowedFile reports whether name carries one of AllowedExtensions,
// compared case-insensitively.
func IsAllowedFile(name string) bool {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	_, ok := AllowedExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}
