package decode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/tiff"

	"github.com/trunov/rawhub/internal/apperr"
)

// Options selects the decoder parameter bundle for one preset.
type Options struct {
	// HalfSize decodes at half resolution, roughly 4x faster.
	HalfSize bool
	// CameraWB applies the white balance recorded by the camera;
	// AutoWB computes one from the image. CameraWB wins if both are set.
	CameraWB bool
	AutoWB   bool
	// SixteenBit requests 16 bits per sample instead of 8.
	SixteenBit bool
	// Interpolation picks the demosaic algorithm, 0 (bilinear,
	// fastest) through 3 (AHD, best).
	Interpolation int
}

// Dcraw decodes camera RAW files by shelling out to a dcraw-compatible
// binary. There is no pure-Go RAW demosaicer, so the decoder stays an
// external collaborator the same way it was for the Python revisions.
type Dcraw struct {
	binary string
}

func NewDcraw() (*Dcraw, error) {
	candidates := []string{"dcraw_emu", "dcraw"}

	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate)
		if err != nil {
			log.Debug().Str("binary", candidate).Msg("binary not found")
			continue
		}

		log.Debug().Str("binary", path).Msg("binary found")
		return &Dcraw{binary: path}, nil
	}

	return nil, errors.New("dcraw binary not available")
}

// Decode runs the binary against the RAW file at path and parses the
// TIFF it emits on stdout.
func (d *Dcraw) Decode(ctx context.Context, path string, opts Options) (image.Image, error) {
	args := buildArgs(opts)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, d.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("stderr", stderr.String()).Strs("args", args).Msg("dcraw failed")
		return nil, apperr.Wrap(apperr.Processing, "decoding RAW file", err)
	}

	img, err := tiff.Decode(&stdout)
	if err != nil {
		return nil, apperr.Wrap(apperr.Processing, "parsing decoder output", err)
	}

	log.Debug().Str("path", path).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("decoded RAW file")

	return img, nil
}

func buildArgs(opts Options) []string {
	// -c writes to stdout, -T selects TIFF output
	args := []string{"-c", "-T"}

	if opts.HalfSize {
		args = append(args, "-h")
	}
	switch {
	case opts.CameraWB:
		args = append(args, "-w")
	case opts.AutoWB:
		args = append(args, "-a")
	}
	if opts.SixteenBit {
		args = append(args, "-6")
	}
	args = append(args, "-q", strconv.Itoa(opts.Interpolation))

	return args
}
