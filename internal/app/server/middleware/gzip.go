package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

func (g *gzipWriter) Pusher() http.Pusher {
	if pusher, ok := g.ResponseWriter.(http.Pusher); ok {
		return pusher
	}
	return nil
}

func shouldGzip(c *gin.Context) bool {
	if !strings.Contains(strings.ToLower(c.Request.Header.Get("Accept-Encoding")), "gzip") {
		return false
	}
	// Snapshot documents are the only payload worth compressing.
	return strings.HasPrefix(c.Request.URL.Path, "/metrics")
}

// GzipMiddleware compresses snapshot responses for clients that accept
// gzip.
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldGzip(c) {
			c.Next()
			return
		}

		gz := gzip.NewWriter(c.Writer)
		defer gz.Close()

		c.Writer = &gzipWriter{
			ResponseWriter: c.Writer,
			writer:         gz,
		}
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		c.Next()
	}
}
