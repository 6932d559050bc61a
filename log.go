package former

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.WithPrefix("former")

// SetLogger replaces the logger used by the package. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Logger returns the logger used by the package.
func Logger() *log.Logger {
	return logger
}
