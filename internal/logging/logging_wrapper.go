package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// LoggingWrapper wraps an http.Handler so every request gets its own LogData
// in the request context, and completion is logged with the accumulated
// fields and timings.
func LoggingWrapper(loggingName string, log *logrus.Logger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		req = req.WithContext(WithLogData(req.Context(), logData))
		handler.ServeHTTP(w, req)

		endTimer()
		logData.AddData("path", req.URL.Path)
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}
