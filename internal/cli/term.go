package cli

import (
	"io"
	"os"
)

// isTerminal reports whether r is a terminal. Only *os.File readers can be.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return false
	}

	return isTerminalFd(int(f.Fd()))
}
