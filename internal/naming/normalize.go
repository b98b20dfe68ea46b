package naming

import (
	"strings"

	"github.com/backmassage/sortbox/internal/scan"
)

// Normalize trims surrounding whitespace (including whitespace between the
// stem and the extension) and replaces every remaining space with an
// underscore.
//
//	"  my file.txt " → "my_file.txt"
//	"file .txt"      → "file.txt"
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	stem, ext := scan.SplitExt(name)
	if s := strings.TrimSpace(stem); s != "" {
		stem = s
	}
	return strings.ReplaceAll(stem+ext, " ", "_")
}
