package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	return &logger
}

// ShortID truncates an identifier for log output. Full account identifiers
// are treated as sensitive and never logged by the transfer path.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
