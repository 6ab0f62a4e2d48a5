package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharepad/sharepad/internal/dispatch"
	"github.com/sharepad/sharepad/internal/history"
	"github.com/sharepad/sharepad/internal/pastebin"
)

type stubUploader struct {
	result pastebin.UploadResult
}

func (s *stubUploader) Upload(ctx context.Context, text string) pastebin.UploadResult {
	if strings.TrimSpace(text) == "" {
		return pastebin.UploadResult{Err: pastebin.ErrInvalidText}
	}
	return s.result
}

func newTestAPI(t *testing.T, up dispatch.Uploader) (*httptest.Server, history.Store) {
	t.Helper()
	store := history.NewMemoryStore(10)
	router := dispatch.NewRouter(up, store, nil, nil, 0, nil)
	ts := httptest.NewServer(Routes(router, nil))
	t.Cleanup(ts.Close)
	return ts, store
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts, _ := newTestAPI(t, &stubUploader{})

	var res dispatch.PingResult
	code := doJSON(t, http.MethodGet, ts.URL+"/health", "", &res)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Ready)
}

func TestCreateShare(t *testing.T) {
	up := &stubUploader{result: pastebin.UploadResult{
		Success: true, ID: "abc", Link: "https://paste.rs/abc", StatusCode: 201,
	}}
	ts, store := newTestAPI(t, up)

	var res dispatch.ShareLinkResult
	code := doJSON(t, http.MethodPost, ts.URL+"/api/shares", `{"text":"hello"}`, &res)

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, res.Success)
	assert.Equal(t, "https://paste.rs/abc", res.Link)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateShare_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		result   pastebin.UploadResult
		wantCode int
	}{
		{
			name:     "validation failure",
			result:   pastebin.UploadResult{Err: pastebin.ErrInvalidText},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "rate limited",
			result:   pastebin.UploadResult{Err: pastebin.ErrRateLimited, StatusCode: 429},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:     "service down",
			result:   pastebin.UploadResult{Err: pastebin.ErrUnavailable, StatusCode: 503},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, _ := newTestAPI(t, &stubUploader{result: tc.result})

			var res dispatch.ShareLinkResult
			code := doJSON(t, http.MethodPost, ts.URL+"/api/shares", `{"text":"hello"}`, &res)

			assert.Equal(t, tc.wantCode, code)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestCreateShare_BadBody(t *testing.T) {
	ts, _ := newTestAPI(t, &stubUploader{})

	code := doJSON(t, http.MethodPost, ts.URL+"/api/shares", "{nope", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListSearchClear(t *testing.T) {
	up := &stubUploader{result: pastebin.UploadResult{
		Success: true, ID: "x", Link: "https://paste.rs/x", StatusCode: 201,
	}}
	ts, _ := newTestAPI(t, up)

	for _, text := range []string{"alpha one", "beta two"} {
		code := doJSON(t, http.MethodPost, ts.URL+"/api/shares", `{"text":"`+text+`"}`, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	var all dispatch.HistoryResult
	code := doJSON(t, http.MethodGet, ts.URL+"/api/shares", "", &all)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, all.History, 2)
	assert.Equal(t, "beta two", all.History[0].Text, "newest first")

	var found dispatch.HistoryResult
	code = doJSON(t, http.MethodGet, ts.URL+"/api/shares/search?q=alpha", "", &found)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, found.History, 1)
	assert.Equal(t, "alpha one", found.History[0].Text)

	code = doJSON(t, http.MethodGet, ts.URL+"/api/shares/search?from=not-a-time", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var cleared dispatch.ClearResult
	code = doJSON(t, http.MethodDelete, ts.URL+"/api/shares", "", &cleared)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, cleared.Success)

	code = doJSON(t, http.MethodGet, ts.URL+"/api/shares", "", &all)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, all.History)
}

func TestLogs(t *testing.T) {
	ts, _ := newTestAPI(t, &stubUploader{})

	var res dispatch.LogsResult
	code := doJSON(t, http.MethodGet, ts.URL+"/api/logs", "", &res)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)
}
