package clientdir_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banking-ms/account-movement-service/internal/adapters/clientdir"
)

func TestGetClientName_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/10", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"clientID":10,"name":"Jose Lema","isActive":true}`))
	}))
	defer server.Close()

	dir := clientdir.NewHTTPClientDirectory(server.URL)

	name, err := dir.GetClientName(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Jose Lema", name)
}

func TestGetClientName_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dir := clientdir.NewHTTPClientDirectory(server.URL)

	_, err := dir.GetClientName(context.Background(), 42)
	assert.Error(t, err)
}

func TestGetClientName_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	dir := clientdir.NewHTTPClientDirectory(server.URL)

	_, err := dir.GetClientName(context.Background(), 10)
	assert.Error(t, err)
}

func TestGetClientName_EmptyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"clientID":10}`))
	}))
	defer server.Close()

	dir := clientdir.NewHTTPClientDirectory(server.URL)

	_, err := dir.GetClientName(context.Background(), 10)
	assert.Error(t, err)
}
