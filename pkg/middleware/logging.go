package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const loggerKey ctxKey = "logger"

type LoggerOptions struct {
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodyLength   int
	RequestIDHeader string
	Repanic         bool
}

func NewLoggerOptions(logRequestBody bool, logResponseBody bool, maxBodyLength int) LoggerOptions {
	return LoggerOptions{
		LogRequestBody:  logRequestBody,
		LogResponseBody: logResponseBody,
		MaxBodyLength:   maxBodyLength,
		RequestIDHeader: "X-Request-ID",
	}
}

func DefaultLoggerOptions() LoggerOptions {
	return NewLoggerOptions(true, false, 512)
}

type responseCaptureWriter struct {
	http.ResponseWriter
	statusCode    int
	statusWritten bool
	body          *bytes.Buffer
}

func (w *responseCaptureWriter) WriteHeader(code int) {
	if !w.statusWritten {
		w.statusCode = code
		w.statusWritten = true
		w.ResponseWriter.WriteHeader(code)
	}
}

// Status returns the HTTP status code
func (w *responseCaptureWriter) Status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func (w *responseCaptureWriter) Write(b []byte) (int, error) {
	if !w.statusWritten {
		w.statusCode = http.StatusOK
		w.statusWritten = true
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseCaptureWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *responseCaptureWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not implement http.Hijacker")
}

func wrapResponseWriter(w http.ResponseWriter) *responseCaptureWriter {
	return &responseCaptureWriter{
		ResponseWriter: w,
		body:           &bytes.Buffer{},
	}
}

func getRequestID(r *http.Request, header string) string {
	if header != "" && len(r.Header.Get(header)) > 0 {
		return r.Header.Get(header)
	}
	return uuid.New().String()
}

// UseLogger returns the request-scoped logger installed by WithLogger.
func UseLogger(ctx context.Context) (*logrus.Entry, bool) {
	entry, ok := ctx.Value(loggerKey).(*logrus.Entry)
	return entry, ok
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func shouldLogBody(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/x-www-form-urlencoded")
}

// WithLogger logs every request with a request id, echoes the id back and
// turns handler panics into a JSON 500.
func WithLogger(logger *logrus.Logger, opts LoggerOptions) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				requestID := getRequestID(r, opts.RequestIDHeader)

				fieldsLogger := logger.WithFields(logrus.Fields{
					"request-id": requestID,
					"path":       r.RequestURI,
					"method":     r.Method,
				})
				fieldsLogger.WithFields(logrus.Fields{
					"host":       r.Host,
					"ip":         r.RemoteAddr,
					"user-agent": r.UserAgent(),
				}).Debug("request started")

				reqContentType := r.Header.Get("Content-Type")
				isMutatingMethod := r.Method == http.MethodPost ||
					r.Method == http.MethodPut ||
					r.Method == http.MethodPatch ||
					r.Method == http.MethodDelete
				if isMutatingMethod && opts.LogRequestBody && shouldLogBody(reqContentType) && r.Body != nil {
					bodyBuf := new(bytes.Buffer)
					if _, err := io.Copy(bodyBuf, r.Body); err != nil {
						fieldsLogger.WithError(err).Error("failed to read request-body")
						http.Error(w, "failed to read request-body", http.StatusInternalServerError)
						return
					}
					r.Body = io.NopCloser(bytes.NewBuffer(bodyBuf.Bytes()))
					fieldsLogger.WithField("request-body", truncate(bodyBuf.String(), opts.MaxBodyLength)).Debug("request-body captured")
				}

				if opts.RequestIDHeader != "" {
					w.Header().Set(opts.RequestIDHeader, requestID)
				}
				ctx := context.WithValue(r.Context(), loggerKey, fieldsLogger)
				wrappedWriter := wrapResponseWriter(w)

				defer func() {
					if recovered := recover(); recovered != nil {
						fieldsLogger.WithFields(logrus.Fields{
							"panic":    recovered,
							"stack":    string(debug.Stack()),
							"duration": time.Since(start),
						}).Error("panic recovered in request handler")

						if !wrappedWriter.statusWritten {
							wrappedWriter.Header().Set("Content-Type", "application/json")
							wrappedWriter.WriteHeader(http.StatusInternalServerError)
							_ = json.NewEncoder(wrappedWriter).Encode(map[string]any{
								"code":    "INTERNAL_SERVER_ERROR",
								"message": "internal server error",
								"meta": map[string]string{
									"request_id": requestID,
									"path":       r.URL.Path,
								},
							})
						}
						if opts.Repanic {
							panic(recovered)
						}
					}
				}()

				next.ServeHTTP(wrappedWriter, r.WithContext(ctx))

				statusCode := wrappedWriter.Status()
				entry := fieldsLogger.WithFields(logrus.Fields{
					"duration":     time.Since(start),
					"status-code":  statusCode,
					"status-class": statusCode / 100,
				})
				if opts.LogResponseBody && shouldLogBody(wrappedWriter.Header().Get("Content-Type")) {
					entry = entry.WithField("response-body", truncate(wrappedWriter.body.String(), opts.MaxBodyLength))
				}
				if statusCode >= http.StatusInternalServerError {
					entry.Error("request completed")
					return
				}
				entry.Info("request completed")
			},
		)
	}
}
