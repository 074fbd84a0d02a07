// internal/middleware/compress.go
package middleware

import (
	"compress/gzip"
	"io"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressibleContentTypes lists content types that should be compressed.
var compressibleContentTypes = []string{
	"application/json",
	"application/javascript",
	"application/xml",
	"image/svg+xml",
}

// gzipWriter decides on the first body write whether the response is worth
// compressing; images and pre-encoded bodies pass through untouched.
type gzipWriter struct {
	gin.ResponseWriter
	gz       *gzip.Writer
	decided  bool
	compress bool
}

func (w *gzipWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true

	h := w.Header()
	if h.Get("Content-Encoding") != "" || !isCompressible(h.Get("Content-Type")) {
		return
	}
	w.compress = true
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
	w.gz = gzipWriterPool.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	w.decide()
	if w.compress {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *gzipWriter) close() {
	if w.gz == nil {
		return
	}
	_ = w.gz.Close()
	gzipWriterPool.Put(w.gz)
	w.gz = nil
}

// Compress gzip-compresses JSON and text responses for clients that accept it.
func Compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") ||
			c.Request.Method == "HEAD" ||
			c.GetHeader("Upgrade") != "" {
			c.Next()
			return
		}

		w := &gzipWriter{ResponseWriter: c.Writer}
		c.Writer = w
		defer func() {
			w.close()
			c.Writer = w.ResponseWriter
		}()

		c.Next()
	}
}

func isCompressible(contentType string) bool {
	if contentType == "" {
		return false
	}
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	contentType = strings.ToLower(contentType)

	for _, ct := range compressibleContentTypes {
		if contentType == ct {
			return true
		}
	}
	return strings.HasPrefix(contentType, "text/")
}
