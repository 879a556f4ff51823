package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/apperr"
)

// Uploader pushes encoded images to the caller-supplied storage
// endpoint and extracts the storage identifier from its response.
type Uploader struct {
	client *http.Client
}

func NewUploader(timeout time.Duration) *Uploader {
	return &Uploader{
		client: &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	StorageID string `json:"storageId"`
}

// Send POSTs payload to url and returns the storageId from the JSON
// response. A non-200 status or a missing storageId fails the request;
// there is nothing sensible to retry against an opaque endpoint.
func (u *Uploader) Send(ctx context.Context, url string, payload []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperr.Wrap(apperr.Network, "creating upload request", err)
	}
	req.Header.Set("Content-Type", contentType)

	res, err := u.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("upload request failed")
		return "", apperr.Wrap(apperr.Network, "uploading converted image", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", apperr.Wrap(apperr.Network, "reading upload response", err)
	}

	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf("upload failed: %d - %s", res.StatusCode, string(body))
		log.Error().Err(err).Str("url", url).Send()
		return "", apperr.Wrap(apperr.Upload, "uploading converted image", err)
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperr.Wrap(apperr.Upload, "unmarshalling upload response", err)
	}

	if result.StorageID == "" {
		return "", apperr.New(apperr.Upload, "no storageId returned by upload endpoint")
	}

	log.Debug().Str("storageId", result.StorageID).Int("bytes", len(payload)).Msg("uploaded converted image")

	return result.StorageID, nil
}
