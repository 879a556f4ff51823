package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trunov/rawhub/internal/config"
	"github.com/trunov/rawhub/internal/converter"
	"github.com/trunov/rawhub/internal/transport/handler"
)

type noopPipeline struct{}

func (noopPipeline) Convert(_ context.Context, _, _ string, preset converter.Preset) (converter.Result, error) {
	return converter.Result{StorageID: "st", Preset: preset.Name}, nil
}

func TestRoutes(t *testing.T) {
	h := handler.New(noopPipeline{}, config.NewConfig())
	srv := httptest.NewServer(NewRouter(h))
	defer srv.Close()

	body := `{"rawFileUrl": "http://x/a.dng", "uploadUrl": "http://y/upload"}`

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodPost, path: "/generate-thumbnail", want: http.StatusOK},
		{method: http.MethodPost, path: "/generate-high-quality-jpeg", want: http.StatusOK},
		{method: http.MethodPost, path: "/generate-baseline-jpeg", want: http.StatusOK},
		{method: http.MethodPost, path: "/generate-webp-preview", want: http.StatusOK},
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/generate-thumbnail", want: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/unknown", want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, strings.NewReader(body))
			assert.NoError(t, err)

			res, err := http.DefaultClient.Do(req)
			assert.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tc.want, res.StatusCode)
		})
	}
}
