package wrangle

import "fmt"

// writeLine writes s followed by a newline to w, adapted from the
// teacher's cmdio.IO.Println (cmd/morc/cmdio/cmdio.go): a single small
// helper rather than re-deriving fmt.Fprintln at every call site.
func writeLine(w Stream, s string) {
	fmt.Fprintln(w, s)
}

// writef writes a formatted string (no trailing newline) to w, mirroring
// cmdio.IO.Printf.
func writef(w Stream, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
