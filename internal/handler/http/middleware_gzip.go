package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for clients
// that accept gzip. Responses that carry no body are passed through.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &pooledReadCloser{Reader: zr, release: func() {
				zr.Close()
				gzipReaders.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		next.ServeHTTP(gw, r)
		gw.finish()
	})
}

type pooledReadCloser struct {
	io.Reader
	release func()
}

func (p *pooledReadCloser) Close() error {
	if p.release != nil {
		p.release()
		p.release = nil
	}
	return nil
}

// gzipResponseWriter starts compressing on the first body write.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	noBody      bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified {
		w.noBody = true
	} else {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.noBody {
		return w.ResponseWriter.Write(data)
	}
	if w.zw == nil {
		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
}
