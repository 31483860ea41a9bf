package itunes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/synctest"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(WithBaseURL(server.URL), WithRateLimit(0))
}

func TestClient_Search(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("term"); got != "daft punk" {
			t.Errorf("term = %q, want %q", got, "daft punk")
		}
		if got := r.URL.Query().Get("entity"); got != "musicTrack" {
			t.Errorf("entity = %q, want musicTrack", got)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "storesearch/") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"resultCount":1,"results":[{"kind":"song","trackName":"One More Time","artistName":"Daft Punk"}]}`)
	})

	results, err := c.Search(context.Background(), Query{Term: "daft punk", Category: CategoryMusic, Limit: 200})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].Name() != "One More Time" {
		t.Errorf("Search() = %v", results)
	}
}

func TestClient_Search_BadStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Search(context.Background(), Query{Term: "x"})
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("Search() error = %v, want ErrBadStatus", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Errorf("error = %#v, want StatusError{500}", err)
	}
}

func TestClient_Search_DecodeError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "not json")
	})

	_, err := c.Search(context.Background(), Query{Term: "x"})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Search() error = %v, want ErrDecode", err)
	}
}

func TestClient_Get_ReturnsStatusAndBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "maintenance")
	})

	body, status, err := c.Get(context.Background(), c.BaseURL()+"/search?term=x")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
	if string(body) != "maintenance" {
		t.Errorf("body = %q", body)
	}
}

func TestClient_Get_Canceled(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, _, err := c.Get(ctx, c.BaseURL()+"/search?term=x")
		errc <- err
	}()

	<-started
	cancel()

	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Get() error = %v, want context.Canceled", err)
	}
}

// mockTransport is a mock http.RoundTripper for testing.
type mockTransport struct {
	err   error
	calls int
}

func (m *mockTransport) RoundTrip(*http.Request) (*http.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"resultCount":0,"results":[]}`)),
	}, nil
}

func TestClient_Get_TransportError(t *testing.T) {
	mock := &mockTransport{err: errors.New("connection refused")}
	c := New(WithTransport(mock), WithRateLimit(0))

	_, _, err := c.Get(context.Background(), DefaultBaseURL+"/search?term=x")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("Get() error = %v, want transport error", err)
	}
	if mock.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", mock.calls)
	}
}

func TestClient_RateLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		mock := &mockTransport{}
		c := New(WithTransport(mock), WithRateLimit(60))

		start := time.Now()
		for range rateBurst + 1 {
			if _, _, err := c.Get(context.Background(), DefaultBaseURL+"/search?term=x"); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
		}
		elapsed := time.Since(start)

		// The burst goes through at once, the next request waits one interval.
		if elapsed < 900*time.Millisecond {
			t.Errorf("%d requests took %v, expected about 1s", rateBurst+1, elapsed)
		}
	})
}

func TestClient_RateLimit_CanceledWait(t *testing.T) {
	c := New(WithTransport(&mockTransport{}), WithRateLimit(1))
	for range rateBurst {
		if _, _, err := c.Get(context.Background(), DefaultBaseURL+"/search?term=x"); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := c.Get(ctx, DefaultBaseURL+"/search?term=x"); err == nil {
		t.Fatal("Get() with canceled context and empty bucket succeeded")
	}
}
