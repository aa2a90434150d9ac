package log

import (
	"io"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Warning *log.Logger
)

func init() {
	InitLog(io.Discard, os.Stderr)
}

// InitLog sets up the loggers. Pass io.Discard to silence one of them.
func InitLog(traceHandle, warningHandle io.Writer) {
	Trace = log.New(traceHandle, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warning = log.New(warningHandle, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// EnableTrace redirects trace output to w
func EnableTrace(w io.Writer) {
	Trace.SetOutput(w)
}
