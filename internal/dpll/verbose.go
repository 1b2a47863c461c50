package dpll

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// DumpStats pretty-prints s to w, one field per line. It is wired to the
// CLI's -v flag and exists purely for interactive debugging, matching
// the teacher solver's verbose mode.
func DumpStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "%# v\n", pretty.Formatter(s))
}
