package testutils

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// TestHTTPServer stands in for imaginary services and remote image origins in tests.
type TestHTTPServer struct {
	*http.ServeMux
}

func NewTestHTTPServer() *TestHTTPServer {
	return &TestHTTPServer{http.NewServeMux()}
}

// ServeImage answers GET requests for path with content and the given mime type.
func (s *TestHTTPServer) ServeImage(path, mimeType string, content []byte) {
	s.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", mimeType)
		w.Write(content)
	})
}

// Start listens on a free port until the test ends and returns the server base URL.
func (s *TestHTTPServer) Start(t *testing.T) string {
	t.Helper()

	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot find free port for test server: %v", err)
	}

	addr := fmt.Sprintf("localhost:%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	t.Cleanup(func() { srv.Close() })

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("test server stopped: %v", err)
		}
	}()

	waitForListener(t, addr)
	return "http://" + addr
}

func waitForListener(t *testing.T, addr string) {
	backoff := 50 * time.Millisecond

	for attempt := 0; attempt < 10; attempt++ {
		conn, err := net.DialTimeout("tcp", addr, time.Second)
		if err != nil {
			time.Sleep(backoff)
			backoff *= 2
			continue
		}
		conn.Close()
		return
	}

	t.Fatalf("test server on %s not up after 10 attempts", addr)
}
