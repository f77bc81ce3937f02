// internal/uniprot/client_test.go
package uniprot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/P99999.xml", r.URL.Path)
		_, _ = w.Write([]byte(sampleXML))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	e, err := c.Fetch(context.Background(), "P99999")
	require.NoError(t, err)
	assert.Equal(t, "MKTAYIAKQR", e.Sequence)
	assert.Len(t, e.Features, 4)
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), "NOPE99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), "P99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetchEmptyAccession(t *testing.T) {
	c := NewClient("http://example.invalid", time.Second)
	_, err := c.Fetch(context.Background(), "  ")
	require.Error(t, err)
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(srv.URL, 0)
	_, err := c.Fetch(ctx, "P99999")
	require.Error(t, err)
}
