package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	assert.True(t, parseFilter[catalog.ProductID]("all").IsAll())
	assert.True(t, parseFilter[catalog.ProductID](" ALL ").IsAll())
	assert.True(t, parseFilter[catalog.ProductID]("none").IsEmpty())
	assert.True(t, parseFilter[catalog.ProductID]("").IsEmpty())

	f := parseFilter[catalog.ProductID]("Club, naConta,,Club")
	assert.Equal(t, []catalog.ProductID{catalog.ProductClub, catalog.ProductNaConta}, f.Members())
}

func TestDoJSONReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"unknown product: Foo"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL+"/", time.Second).DoJSON(context.Background(), http.MethodPost, "/api/config/products/Foo/reset", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404 unknown product: Foo")
}

func TestDoJSONSendsAndDecodes(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"theme":"ESG","subthemes":"","products":["Club"],"channels":"all","persona":"none"}`))
	}))
	defer srv.Close()

	var state selection.State
	err := NewClient(srv.URL, time.Second).DoJSON(context.Background(), http.MethodPut, "/api/selection", selection.NewState(), &state)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ESG", state.Theme)
	assert.Equal(t, []catalog.ProductID{catalog.ProductClub}, state.Products.Members())
	assert.True(t, state.Channels.IsAll())
}
