// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Tracef emits a per-record diagnostic line when debug is on. The trace
// stream is independent of the result stream and carries no format
// guarantees.
func Tracef(dst io.Writer, debug bool, format string, a ...any) {
	if !debug {
		return
	}
	_, _ = fmt.Fprintf(dst, "DEBUG: "+format+"\n", a...)
}
