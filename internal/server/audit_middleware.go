package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if strings.Contains(r.URL.Path, "/orders/") {
			parts := strings.Split(r.URL.Path, "/")
			for i, part := range parts {
				if part == "orders" && i+1 < len(parts) {
					entry.OrderID = parts[i+1]
					break
				}
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		rec := newAuditRecorder(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.Status()
		entry.Response = string(rec.Body())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/orders"):
		switch {
		case method == http.MethodPost && strings.HasSuffix(path, "/assign"):
			return "handleAssignBox"
		case method == http.MethodPost && strings.HasSuffix(path, "/release"):
			return "handleReleaseOrder"
		case method == http.MethodGet && strings.HasSuffix(path, "/storage"):
			return "handleOrderStorage"
		case method == http.MethodGet && strings.HasSuffix(path, "/describe"):
			return "handleDescribeOrder"
		case method == http.MethodPost:
			return "handleCreateOrder"
		case method == http.MethodGet:
			return "handleGetOrder"
		case method == http.MethodPut:
			return "handleUpdateOrder"
		case method == http.MethodDelete:
			return "handleDeleteOrder"
		}
	case strings.HasPrefix(path, "/clients"):
		switch {
		case strings.HasSuffix(path, "/orders"):
			return "handleListClientOrders"
		case method == http.MethodPost:
			return "handleCreateClient"
		case method == http.MethodGet && path == "/clients":
			return "handleListClients"
		case method == http.MethodGet:
			return "handleGetClient"
		case method == http.MethodPut:
			return "handleUpdateClient"
		case method == http.MethodDelete:
			return "handleDeleteClient"
		}
	case strings.HasPrefix(path, "/storages"):
		switch {
		case strings.HasSuffix(path, "/boxes") && method == http.MethodPost:
			return "handleCreateBox"
		case strings.HasSuffix(path, "/boxes"):
			return "handleListBoxes"
		case method == http.MethodPost:
			return "handleCreateStorage"
		case method == http.MethodGet && path == "/storages":
			return "handleListStorages"
		case method == http.MethodGet:
			return "handleGetStorage"
		case method == http.MethodPut:
			return "handleUpdateStorage"
		case method == http.MethodDelete:
			return "handleDeleteStorage"
		}
	case strings.HasPrefix(path, "/boxes"):
		switch method {
		case http.MethodGet:
			return "handleGetBox"
		case http.MethodPut:
			return "handleUpdateBox"
		case http.MethodDelete:
			return "handleDeleteBox"
		}
	}

	return "unknown"
}
