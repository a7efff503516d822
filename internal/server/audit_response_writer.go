package server

import (
	"bytes"
	"net/http"
)

// auditRecorder captures the status code and body a handler writes so the
// audit middleware can attach them to the log entry after the fact.
type auditRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newAuditRecorder(w http.ResponseWriter) *auditRecorder {
	return &auditRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *auditRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *auditRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

func (rec *auditRecorder) Status() int {
	return rec.status
}

func (rec *auditRecorder) Body() []byte {
	return rec.body.Bytes()
}
