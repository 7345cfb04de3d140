package httphandler

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer(t *testing.T) {
	t.Run("ServeAndClose", func(t *testing.T) {
		mux := http.NewServeMux()
		RegisterHealth(mux)

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		srv := NewHTTPServer(ln.Addr().String(), mux)
		stopped, stop := context.WithCancel(context.Background())
		go srv.Serve(ln, stop)

		res, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		require.NoError(t, err)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Close(ctx)

		select {
		case <-stopped.Done():
		case <-time.After(time.Second):
			t.Fatal("stop function was not called")
		}
	})

	t.Run("RequestTimeout", func(t *testing.T) {
		slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		srv := NewHTTPServer(":0", slow, WithRequestTimeout(20*time.Millisecond))

		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, timeoutMessage, rec.Body.String())
	})

	t.Run("Defaults", func(t *testing.T) {
		srv := NewHTTPServer(":0", http.NotFoundHandler(), WithIdleTimeout(0))
		assert.Equal(t, defaultIdleTimeout, srv.httpServer.IdleTimeout)
		assert.Equal(t, readHeaderTimeout, srv.httpServer.ReadHeaderTimeout)
	})
}

func TestRegisterStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images", "products"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "images", "products", "1.webp"), []byte("img"), 0o644))

	mux := http.NewServeMux()
	RegisterStatic(mux, dir)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/products/1.webp", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "img", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/products/2.webp", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
