package pocketbase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestClient_List(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/collections/trainers/records", r.URL.Path)
		gotQuery = map[string]string{
			"filter":  r.URL.Query().Get("filter"),
			"sort":    r.URL.Query().Get("sort"),
			"expand":  r.URL.Query().Get("expand"),
			"perPage": r.URL.Query().Get("perPage"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"perPage":50,"totalItems":2,"items":[{"id":"a1","name":"Иванов"},{"id":"b2","name":"Петров"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	var records []testRecord
	err := client.List(context.Background(), "trainers", ListParams{
		Filter:  "is_active = true",
		Sort:    "sort_order,name",
		Expand:  "color_theme",
		PerPage: 50,
	}, &records)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Иванов", records[0].Name)
	assert.Equal(t, "is_active = true", gotQuery["filter"])
	assert.Equal(t, "sort_order,name", gotQuery["sort"])
	assert.Equal(t, "color_theme", gotQuery["expand"])
	assert.Equal(t, "50", gotQuery["perPage"])
}

func TestClient_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	var records []testRecord
	err := client.List(context.Background(), "trainers", ListParams{}, &records)

	assert.Error(t, err)
	assert.False(t, IsCancellation(err))
}

func TestClient_List_Cancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	var records []testRecord
	err := client.List(ctx, "news", ListParams{}, &records)

	require.Error(t, err)
	assert.True(t, IsCancellation(err), "cancelled fetch must be identifiable as cancellation")
}

func TestClient_GetOne_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	var rec testRecord
	err := client.GetOne(context.Background(), "news", "missing", "", &rec)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Update(t *testing.T) {
	var gotMethod, gotPath, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"id":"n1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	err := client.Update(context.Background(), "news", "n1", map[string]any{
		"reaction_counts": map[string]int{"fire": 3},
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/collections/news/records/n1", gotPath)
	assert.Contains(t, gotBody, `"fire":3`)
}

func TestEscapeFilterValue(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "open-doors", "open-doors"},
		{"single quote", "d'angelo", `d\'angelo`},
		{"backslash", `a\b`, `a\\b`},
		{"quote breakout", `x' || is_published = false || slug = 'x`, `x\' || is_published = false || slug = \'x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeFilterValue(tt.in))
		})
	}
}
