package display

import (
	"fmt"
	"io"

	"github.com/backmassage/sortbox/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta.Sprint(`                 _   _
  ___  ___  _ __| |_| |__   _____  __
 / __|/ _ \| '__| __| '_ \ / _ \ \/ /
 \__ \ (_) | |  | |_| |_) | (_) >  <
 |___/\___/|_|   \__|_.__/ \___/_/\_\
`))
	fmt.Fprintln(w)
}
