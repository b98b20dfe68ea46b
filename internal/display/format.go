// Package display renders read-only reports (listings, type tables, groups)
// and layout diffs for the console.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/sortbox/internal/scan"
	"github.com/backmassage/sortbox/internal/term"
)

// WriteListing prints the entry names of dir between header and footer
// markers, or an "is empty" line.
func WriteListing(w io.Writer, dir string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(w, "\n\t%s is empty\n", dir)
		return
	}
	fmt.Fprintf(w, "\n\t%s\n", term.Cyan.Sprintf("----- Contents of %s -----", dir))
	for _, n := range names {
		fmt.Fprintf(w, "\t%s\n", n)
	}
	fmt.Fprintf(w, "\n\t%s\n", term.Cyan.Sprintf("-----    End of %s   -----", dir))
}

// WriteTypes prints each entry with its type and extension.
func WriteTypes(w io.Writer, dir string, entries []scan.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "\n\t%s is empty\n", dir)
		return
	}
	fmt.Fprintf(w, "\n\t%s\n", term.Cyan.Sprintf("----- Contents of %s With Type ------", dir))
	for _, e := range entries {
		fmt.Fprintf(w, "\t%s\n", e.Name)
		fmt.Fprintf(w, "\tType: %s\n", e.Kind)
		fmt.Fprintf(w, "\tExtension: %s\n\n", FormatExt(e))
	}
	fmt.Fprintf(w, "\n\t%s\n", term.Cyan.Sprintf("-----         End of %s        ------", dir))
}

// WriteGroups prints each category label followed by its members.
func WriteGroups(w io.Writer, dir string, g *scan.Grouping) {
	if g.Size() == 0 {
		fmt.Fprintf(w, "\n\t%s is empty\n", dir)
		return
	}
	fmt.Fprintf(w, "\n\t%s\n", term.Cyan.Sprintf("----- Items in %s by Group", dir))
	for _, c := range g.Categories() {
		fmt.Fprintf(w, "\n\t%s:\n", term.Yellow.Sprint(c.String()))
		for _, n := range g.Members(c) {
			fmt.Fprintf(w, "\t\t%s\n", n)
		}
	}
}

// FormatExt returns the entry's extension or "None".
func FormatExt(e scan.Entry) string {
	if e.Ext == "" {
		return "None"
	}
	return e.Ext
}
