package shared

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether stream is an *os.File attached to a terminal,
// including Cygwin and msys ptys.
func IsTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
