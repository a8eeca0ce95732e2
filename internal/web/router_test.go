package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jusunglee/hangulsearch/internal/db/sqlite"
	"github.com/jusunglee/hangulsearch/internal/index"
	"github.com/jusunglee/hangulsearch/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	log := logger.Get()
	router := NewRouter(repo, log, index.New(repo, log))
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateAndGetDocument(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/documents", map[string]string{
		"title": "한국 여행기",
		"body":  "서울과 부산",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[map[string]any](t, resp)
	id := int64(created["id"].(float64))

	resp2, err := http.Get(fmt.Sprintf("%s/api/v1/documents/%d", srv.URL, id))
	require.NoError(t, err)
	got := decodeJSON[map[string]any](t, resp2)
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "한국 여행기", got["title"])
}

func TestCreateDocumentValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/documents", map[string]string{"body": "no title"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDocumentNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/documents/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteDocument(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/documents", map[string]string{"title": "지울 문서"})
	created := decodeJSON[map[string]any](t, resp)
	id := int64(created["id"].(float64))

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/v1/documents/%d", srv.URL, id), nil)
	require.NoError(t, err)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	resp3, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestSearchModes(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/documents", map[string]string{
		"title": "오픈서치 플러그인",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	type searchResult struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}

	tests := []struct {
		mode  string
		query string
	}{
		{"exact", "오픈서치"},
		{"jamo", "오픈서치"},
		{"chosung", "ㅇㅍㅅㅊ"},
		{"keystroke", "dhvmstjcl"},
	}
	for _, tt := range tests {
		q := url.Values{"q": {tt.query}, "mode": {tt.mode}}
		resp, err := http.Get(srv.URL + "/api/v1/search?" + q.Encode())
		require.NoError(t, err)
		result := decodeJSON[searchResult](t, resp)
		require.Len(t, result.Data, 1, "mode %s", tt.mode)
		assert.Equal(t, "오픈서치 플러그인", result.Data[0].Title)
	}
}

func TestSearchBadRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/search?mode=jamo")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/search?q=%ED%95%9C&mode=fuzzy")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", map[string]any{
		"text":    "한국",
		"filters": []string{"jamo"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeJSON[map[string][]string](t, resp)
	assert.Equal(t, []string{"ㅎㅏㄴㄱㅜㄱ"}, result["tokens"])
}

func TestAnalyzeUnknownFilter(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", map[string]any{
		"text":    "한국",
		"filters": []string{"nope"},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
