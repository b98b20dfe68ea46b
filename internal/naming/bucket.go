package naming

import (
	"strings"
	"unicode/utf8"

	"github.com/backmassage/sortbox/internal/scan"
)

// dotPrefix marks buckets for single-character extensions so ".c" does not
// become a bare "C" folder.
const dotPrefix = "DOT_"

// BucketName returns the destination folder for c. The second result is
// false for scan.Folder, which never gets a bucket.
//
//	".txt"        → "TXT"
//	".c"          → "DOT_C"
//	No Extension  → "No Extension"
//	Improper File → "Improper File"
func BucketName(c scan.Category) (string, bool) {
	switch c.Kind {
	case scan.CategoryFolder:
		return "", false
	case scan.CategoryNoExtension, scan.CategoryImproper:
		return c.String(), true
	}
	name := strings.ToUpper(strings.TrimPrefix(c.Ext, "."))
	if utf8.RuneCountInString(name) == 1 {
		name = dotPrefix + name
	}
	return name, true
}
