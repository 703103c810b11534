package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVideo(t *testing.T) {
	t.Run("first hit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "JEE Thermodynamics tutorial", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"abc123"}},{"id":{"videoId":"def456"}}]}`))
		}))
		defer server.Close()

		finder := NewVideoFinder("test-key", WithVideoBaseURL(server.URL))
		got, err := finder.FindTopicVideo(context.Background(), "Thermodynamics")
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc123", got)
	})

	t.Run("no results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))
		defer server.Close()

		finder := NewVideoFinder("test-key", WithVideoBaseURL(server.URL))
		got, err := finder.FindVideo(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing API key skips request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request made without API key")
		}))
		defer server.Close()

		finder := NewVideoFinder("", WithVideoBaseURL(server.URL))
		got, err := finder.FindVideo(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("server error degrades to empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		finder := NewVideoFinder("test-key", WithVideoBaseURL(server.URL))
		got, err := finder.FindVideo(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// rewriteTransport routes every request to the test server regardless
// of the request host, so allow-listed domains resolve in tests.
type rewriteTransport struct {
	base *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.base.Scheme
	req.URL.Host = t.base.Host
	return http.DefaultTransport.RoundTrip(req)
}

func TestFindSolutionLink(t *testing.T) {
	newFinder := func(t *testing.T, handler http.Handler) *SolutionFinder {
		t.Helper()
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		base, err := url.Parse(server.URL)
		require.NoError(t, err)
		return NewSolutionFinder(
			WithSolutionBaseURL(server.URL+"/html"),
			WithSolutionClient(&http.Client{Transport: rewriteTransport{base: base}}),
		)
	}

	t.Run("accepts first keyword page", func(t *testing.T) {
		finder := newFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/html":
				assert.Contains(t, r.URL.Query().Get("q"), "site:byjus.com")
				assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
				_, _ = w.Write([]byte(`
					<a href="https://example.com/unrelated">off-list</a>
					<a href="https://byjus.com/landing">one</a>
					<a href="https://www.vedantu.com/q/42">two</a>
				`))
			case "/landing":
				_, _ = w.Write([]byte("<html>welcome to our site</html>"))
			case "/q/42":
				_, _ = w.Write([]byte("<html>Step by step SOLUTION follows</html>"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		got, err := finder.FindSolutionLink(context.Background(), "integrate x^2")
		require.NoError(t, err)
		assert.Equal(t, "https://www.vedantu.com/q/42", got)
	})

	t.Run("decodes redirect-wrapped links", func(t *testing.T) {
		wrapped := url.QueryEscape("https://toppr.com/ask/q1")
		finder := newFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/html":
				_, _ = w.Write([]byte(`<a href="//duckduckgo.com/l/?uddg=` + wrapped + `&rut=x">res</a>`))
			case "/ask/q1":
				_, _ = w.Write([]byte("the answer is 42"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		got, err := finder.FindSolutionLink(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, "https://toppr.com/ask/q1", got)
	})

	t.Run("no qualifying page", func(t *testing.T) {
		finder := newFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/html":
				_, _ = w.Write([]byte(`<a href="https://byjus.com/landing">one</a>`))
			default:
				_, _ = w.Write([]byte("nothing relevant here"))
			}
		}))

		got, err := finder.FindSolutionLink(context.Background(), "q")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("search failure degrades to empty", func(t *testing.T) {
		finder := newFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))

		got, err := finder.FindSolutionLink(context.Background(), "q")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAllowedDomains(t *testing.T) {
	finder := NewSolutionFinder()
	assert.True(t, finder.allowed("https://byjus.com/x"))
	assert.True(t, finder.allowed("https://www.mathongo.com/x"))
	assert.False(t, finder.allowed("https://notbyjus.com/x"))
	assert.False(t, finder.allowed("https://example.com/byjus.com"))
	assert.False(t, finder.allowed("not a url"))
}
