package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/tailogic/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

// Writer is stderr unless -log-file names a file to append to.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open log file: %w", err))
	}
	return f
}
