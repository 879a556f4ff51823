package converter

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/apperr"
	"github.com/trunov/rawhub/internal/decode"
	"github.com/trunov/rawhub/internal/processor"
)

type Downloader interface {
	ToFile(ctx context.Context, url, dest string) (int64, error)
}

type Decoder interface {
	Decode(ctx context.Context, path string, opts decode.Options) (image.Image, error)
}

type Uploader interface {
	Send(ctx context.Context, url string, payload []byte, contentType string) (string, error)
}

type Archiver interface {
	Enqueue(ctx context.Context, key, contentType string, payload []byte) error
}

type Result struct {
	StorageID string
	Width     int
	Height    int
	FileSize  int
	Preset    string
}

// Converter runs the per-request pipeline: download the RAW file into
// a scoped temp directory, decode it, fit it into the preset's box,
// encode, upload, and optionally queue an archive copy. The temp
// directory is removed on every exit path.
type Converter struct {
	downloader Downloader
	decoder    Decoder
	uploader   Uploader
	archiver   Archiver
	workDir    string
}

func New(downloader Downloader, decoder Decoder, uploader Uploader, archiver Archiver, workDir string) *Converter {
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &Converter{
		downloader: downloader,
		decoder:    decoder,
		uploader:   uploader,
		archiver:   archiver,
		workDir:    workDir,
	}
}

func (c *Converter) Convert(ctx context.Context, rawFileURL, uploadURL string, preset Preset) (Result, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Processing, "generating request id", err)
	}

	dir := filepath.Join(c.workDir, "rawhub-"+id.String())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Result{}, apperr.Wrap(apperr.Processing, "creating temp directory", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("could not clean up temp directory")
			return
		}
		log.Debug().Str("dir", dir).Msg("cleaned up temp directory")
	}()

	log.Info().Str("url", rawFileURL).Str("preset", preset.Name).Msg("processing RAW file")

	rawPath := filepath.Join(dir, "input.dng")
	rawSize, err := c.downloader.ToFile(ctx, rawFileURL, rawPath)
	if err != nil {
		return Result{}, err
	}

	if mtype, merr := mimetype.DetectFile(rawPath); merr == nil {
		log.Debug().Str("mime", mtype.String()).Int64("bytes", rawSize).Msg("downloaded RAW file")
	}

	img, err := c.decoder.Decode(ctx, rawPath, preset.Decode)
	if err != nil {
		return Result{}, err
	}

	resized := processor.FitWithin(img, preset.MaxWidth, preset.MaxHeight)
	width, height := processor.Bounds(resized)

	data, err := encode(resized, preset)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Processing, "encoding image", err)
	}

	outPath := filepath.Join(dir, "output"+preset.Extension())
	if err := os.WriteFile(outPath, data, 0o600); err != nil {
		return Result{}, apperr.Wrap(apperr.Processing, "writing encoded image", err)
	}

	log.Info().Str("preset", preset.Name).Str("dimensions", fmt.Sprintf("%dx%d", width, height)).Int("bytes", len(data)).Msg("generated image")

	storageID, err := c.uploader.Send(ctx, uploadURL, data, preset.ContentType())
	if err != nil {
		return Result{}, err
	}

	if c.archiver != nil {
		key := id.String() + preset.Extension()
		if err := c.archiver.Enqueue(ctx, key, preset.ContentType(), data); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("could not queue archive copy")
		}
	}

	log.Info().Str("storageId", storageID).Str("preset", preset.Name).Msg("successfully uploaded image")

	return Result{
		StorageID: storageID,
		Width:     width,
		Height:    height,
		FileSize:  len(data),
		Preset:    preset.Name,
	}, nil
}

func encode(img image.Image, preset Preset) ([]byte, error) {
	if preset.Format == WebP {
		return processor.EncodeWebP(img, float32(preset.Quality))
	}
	return processor.EncodeJPEG(img, preset.Quality)
}
