package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{name: "client maps to 400", kind: Client, want: http.StatusBadRequest},
		{name: "network maps to 500", kind: Network, want: http.StatusInternalServerError},
		{name: "processing maps to 500", kind: Processing, want: http.StatusInternalServerError},
		{name: "upload maps to 500", kind: Upload, want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "direct error",
			err:  New(Network, "download failed"),
			want: Network,
		},
		{
			name: "wrapped error",
			err:  fmt.Errorf("pipeline: %w", Wrap(Upload, "no storageId", errors.New("empty field"))),
			want: Upload,
		},
		{
			name: "plain error defaults to processing",
			err:  errors.New("boom"),
			want: Processing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Network, "fetching raw file", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "fetching raw file: connection refused", err.Error())
	assert.Equal(t, "no storageId", New(Upload, "no storageId").Error())
}
