package server

import (
	"net/http"
)

const statusUnwrited = -1

// responseWriter captures the status code for the access log and the
// panic recovery path.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, statusUnwrited}
}

func (rsp *responseWriter) WriteHeader(status int) {
	rsp.status = status
	rsp.ResponseWriter.WriteHeader(status)
}

func (rsp *responseWriter) Write(data []byte) (int, error) {
	if rsp.status == statusUnwrited {
		rsp.status = http.StatusOK
	}
	return rsp.ResponseWriter.Write(data)
}
