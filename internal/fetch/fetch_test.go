package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestFetch_UserAgentAndSuccess(t *testing.T) {
	t.Setenv("FIXTURES_UA", "test-agent/1.0")
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	cl, err := New(Options{Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp, err := cl.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if gotUA != "test-agent/1.0" {
		t.Fatalf("user-agent = %q, want %q", gotUA, "test-agent/1.0")
	}
}

func TestFetch_RetryOnStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	cl, _ := New(Options{Retry: 1, Timeout: 2 * time.Second})
	var v struct {
		OK bool `json:"ok"`
	}
	o := cl.GetJSON(context.Background(), srv.URL, &v)
	if !o.OK || !v.OK {
		t.Fatalf("outcome = %v, v = %+v", o, v)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("calls = %d, want 2", n)
	}
}

func TestGetJSON_NoRetryByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cl, _ := New(Options{Timeout: 2 * time.Second})
	var v map[string]any
	o := cl.GetJSON(context.Background(), srv.URL, &v)
	if o.OK || o.Reason != ReasonStatus || o.Status != http.StatusServiceUnavailable {
		t.Fatalf("unexpected outcome: %+v", o)
	}
	if !errors.Is(o.Err, ErrStatus) {
		t.Fatalf("err must be marked as status: %v", o.Err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("calls = %d, want 1", n)
	}
}

func TestGetJSON_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	cl, _ := New(Options{})
	var v map[string]any
	o := cl.GetJSON(context.Background(), srv.URL, &v)
	if !o.Absent() || o.Reason != ReasonDecode || !errors.Is(o.Err, ErrDecode) {
		t.Fatalf("unexpected outcome: %+v", o)
	}
}

func TestGetJSON_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // conexão recusada

	cl, _ := New(Options{Timeout: time.Second})
	var v map[string]any
	o := cl.GetJSON(context.Background(), url, &v)
	if o.OK || o.Reason != ReasonTransport || !errors.Is(o.Err, ErrTransport) {
		t.Fatalf("unexpected outcome: %+v", o)
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cl, _ := New(Options{Timeout: 100 * time.Millisecond})
	_, err := cl.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if ReasonOf(err) != ReasonTransport {
		t.Fatalf("timeout must classify as transport: %v", err)
	}
}
