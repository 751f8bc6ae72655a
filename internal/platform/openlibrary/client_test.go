package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{"numFound":2,"docs":[
	{"key":"/works/OL1W","title":"Dune","author_name":["Frank Herbert"],"isbn":["9780441013593"]},
	{"key":"/works/OL2W","title":"Untitled"}
]}`

func TestClient_SearchBySubject(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient("bookstore-test", 100, 0, WithBaseURL(srv.URL))
	res, err := c.SearchBySubject(context.Background(), "science fiction", 5)

	require.NoError(t, err)
	assert.Equal(t, "subject:science fiction", gotQuery)
	assert.Equal(t, "bookstore-test", gotUA)
	assert.Equal(t, 2, res.NumFound)
	require.Len(t, res.Docs, 2)
	assert.Equal(t, "Dune", res.Docs[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, res.Docs[0].AuthorNames)
	assert.Empty(t, res.Docs[1].ISBN)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient("bookstore-test", 100, 3, WithBaseURL(srv.URL), WithBackoff(time.Millisecond))
	res, err := c.SearchBySubject(context.Background(), "fantasy", 2)

	require.NoError(t, err)
	assert.Len(t, res.Docs, 2)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("bookstore-test", 100, 3, WithBaseURL(srv.URL), WithBackoff(time.Millisecond))
	_, err := c.SearchBySubject(context.Background(), "fantasy", 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("bookstore-test", 100, 1, WithBaseURL(srv.URL), WithBackoff(time.Millisecond))
	_, err := c.SearchBySubject(context.Background(), "fantasy", 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 retries")
}
