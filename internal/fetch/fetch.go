package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/apperr"
)

const chunkSize = 8192

// Downloader streams remote files to disk with a hard size cap.
type Downloader struct {
	client   *http.Client
	maxBytes int64
}

func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	return &Downloader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// ToFile downloads url into dest, writing chunks as they arrive. It
// aborts without writing further once the body exceeds the configured
// cap, so a hostile source can never fill the disk or the heap.
func (d *Downloader) ToFile(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, apperr.Wrap(apperr.Network, "creating download request", err)
	}

	res, err := d.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("download request failed")
		return 0, apperr.Wrap(apperr.Network, "downloading RAW file", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err = fmt.Errorf("unexpected status code on download: %d", res.StatusCode)
		log.Error().Err(err).Str("url", url).Send()
		return 0, apperr.Wrap(apperr.Network, "downloading RAW file", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, apperr.Wrap(apperr.Processing, "creating download target", err)
	}
	defer f.Close()

	var written int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := res.Body.Read(buf)
		if n > 0 {
			if written+int64(n) > d.maxBytes {
				err = fmt.Errorf("file too large (>%d bytes)", d.maxBytes)
				log.Warn().Str("url", url).Int64("limit", d.maxBytes).Msg("download exceeds size cap")
				return written, apperr.Wrap(apperr.Processing, "downloading RAW file", err)
			}
			if _, werr := f.Write(buf[:n]); werr != nil {
				return written, apperr.Wrap(apperr.Processing, "writing RAW file", werr)
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, apperr.Wrap(apperr.Network, "reading download stream", rerr)
		}
	}

	log.Debug().Str("url", url).Int64("bytes", written).Msg("downloaded RAW file")

	return written, nil
}
