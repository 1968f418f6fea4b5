package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the client quiet unless something is wrong
const DefaultLevel = logrus.WarnLevel

// Setup configures the standard logrus logger. An empty level selects
// DefaultLevel.
func Setup(level string, w io.Writer) error {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("unable to parse logging level %q: %w", level, err)
		}
		lvl = parsed
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}
