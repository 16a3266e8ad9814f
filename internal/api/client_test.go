// ABOUTME: Tests for the core request operation
// ABOUTME: Covers URL joining, headers, body handling, and error normalization

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticIdentity implements Identity with a fixed user id.
type staticIdentity string

func (s staticIdentity) UserID() (string, bool) {
	return string(s), s != ""
}

// recordedRequest captures what the backend saw.
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// newRecordingServer returns a test backend that records each request and
// replies with the given status and body.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.RequestURI()
		rec.Header = r.Header.Clone()
		rec.Body = string(raw)

		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func TestDo_URLJoining(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"leading slash", "/diet-app/diets"},
		{"no leading slash", "diet-app/diets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
			client := New(srv.URL+"/", "key", nil)

			require.NoError(t, client.Get(context.Background(), tt.path, nil))
			assert.Equal(t, "/diet-app/diets", rec.Path)
		})
	}
}

func TestDo_APIKeyHeaderAlwaysSet(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "shared-secret", nil)

	require.NoError(t, client.Get(context.Background(), "login", nil))
	assert.Equal(t, "shared-secret", rec.Header.Get("x-carenexa-api-key"))
}

func TestDo_IdentityHeader(t *testing.T) {
	t.Run("attached from identity", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(srv.URL, "key", staticIdentity("42"))

		require.NoError(t, client.Get(context.Background(), "diet-app/diets", nil))
		assert.Equal(t, "42", rec.Header.Get("x-user-id"))
	})

	t.Run("absent without session", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(srv.URL, "key", staticIdentity(""))

		require.NoError(t, client.Get(context.Background(), "diet-app/diets", nil))
		assert.Empty(t, rec.Header.Get("x-user-id"))
	})

	t.Run("absent with nil identity", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(srv.URL, "key", nil)

		require.NoError(t, client.Get(context.Background(), "diet-app/diets", nil))
		assert.Empty(t, rec.Header.Get("x-user-id"))
	})

	t.Run("explicit header wins", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(srv.URL, "key", staticIdentity("42"))

		require.NoError(t, client.Get(context.Background(), "diet-app/diets", nil,
			WithHeader("x-user-id", "7")))
		assert.Equal(t, "7", rec.Header.Get("x-user-id"))
	})
}

func TestDo_JSONBody(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "key", nil)

	payload := map[string]string{"email": "a@b.c"}
	require.NoError(t, client.Post(context.Background(), "login", payload, nil))

	assert.Equal(t, "application/json", rec.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"email":"a@b.c"}`, rec.Body)
}

func TestDo_NoBodyPassThrough(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "key", nil)

	require.NoError(t, client.Post(context.Background(), "diet-app/diets/1/pdf", nil, nil))

	assert.Empty(t, rec.Header.Get("Content-Type"))
	assert.Empty(t, rec.Body)
}

func TestDo_RawBodyPassThrough(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "key", nil)

	require.NoError(t, client.Post(context.Background(), "upload", nil, nil,
		WithRawBody(strings.NewReader("raw-bytes"))))

	assert.Empty(t, rec.Header.Get("Content-Type"))
	assert.Equal(t, "raw-bytes", rec.Body)
}

func TestDo_CacheDisabled(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "key", nil)

	require.NoError(t, client.Get(context.Background(), "diet-app/diets", nil))
	assert.Equal(t, "no-store", rec.Header.Get("Cache-Control"))
}

func TestDo_SuccessDecodesBody(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, `{"id":"d-1","title":"Keto Week"}`)
	client := New(srv.URL, "key", nil)

	var diet Diet
	require.NoError(t, client.Get(context.Background(), "diet-app/diets/d-1", &diet))
	assert.Equal(t, "d-1", diet.ID)
	assert.Equal(t, "Keto Week", diet.Title)
}

func TestDo_SuccessWithNonJSONBody(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, "not json at all")
	client := New(srv.URL, "key", nil)

	var diet Diet
	require.NoError(t, client.Get(context.Background(), "diet-app/diets/d-1", &diet))
	assert.Empty(t, diet.ID)
}

func TestDo_ErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusBadRequest, `{"message":"bad intake","error":"ignored"}`, "bad intake"},
		{"error field", http.StatusBadRequest, `{"error":"intake rejected"}`, "intake rejected"},
		{"status text", http.StatusNotFound, `{"detail":"nope"}`, "Not Found"},
		{"status text on non-json", http.StatusBadGateway, "<html>boom</html>", "Bad Gateway"},
		{"fallback", 599, "", "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRecordingServer(t, tt.status, tt.body)
			client := New(srv.URL, "key", nil)

			err := client.Get(context.Background(), "diet-app/diets", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestDo_ErrorCarriesDetails(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusUnprocessableEntity, `{"message":"invalid","fields":["city"]}`)
	client := New(srv.URL, "key", nil)

	err := client.Get(context.Background(), "diet-app/diets", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "invalid", details["message"])
}

func TestDo_TransportErrorNormalized(t *testing.T) {
	// Point at a closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, "key", nil)
	err := client.Get(context.Background(), "diet-app/diets", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.Error(t, errors.Unwrap(apiErr))
}

func TestDo_ContextCancellation(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, `{}`)
	client := New(srv.URL, "key", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "diet-app/diets", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveURL(t *testing.T) {
	client := New("https://backend.example.com/", "key", nil)

	assert.Equal(t, "https://cdn.example.com/x.pdf", client.ResolveURL("https://cdn.example.com/x.pdf"))
	assert.Equal(t, "https://backend.example.com/files/x.pdf", client.ResolveURL("/files/x.pdf"))
	assert.Equal(t, "https://backend.example.com/files/x.pdf", client.ResolveURL("files/x.pdf"))
}

func TestDownload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			io.WriteString(w, "%PDF-1.4")
		}))
		t.Cleanup(srv.Close)

		client := New(srv.URL, "key", nil)
		resp, err := client.Download(context.Background(), srv.URL+"/files/plan.pdf")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(body))
	})

	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		client := New(srv.URL, "key", nil)
		_, err := client.Download(context.Background(), srv.URL+"/files/missing.pdf")

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})
}
