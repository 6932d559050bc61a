package ui

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ytget/former"
)

var logger = log.WithPrefix("ui")

// ApplyLogLevel sets level on the default logger and on the loggers of the
// ui and former packages.
func ApplyLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	log.SetLevel(lvl)
	logger.SetLevel(lvl)
	former.Logger().SetLevel(lvl)
	return nil
}
