package converter

import "github.com/trunov/rawhub/internal/decode"

type Format int

const (
	JPEG Format = iota
	WebP
)

// Preset bundles the decode, resize and encode parameters behind one
// endpoint. The decode knobs trade fidelity for speed: the thumbnail
// and baseline presets decode at half resolution with the camera's
// white balance, the high-quality preset does a full-resolution 16-bit
// decode with AHD demosaicing and computed white balance.
type Preset struct {
	Name      string
	MaxWidth  int
	MaxHeight int
	Format    Format
	Quality   int
	Decode    decode.Options
}

func (p Preset) ContentType() string {
	if p.Format == WebP {
		return "image/webp"
	}
	return "image/jpeg"
}

func (p Preset) Extension() string {
	if p.Format == WebP {
		return ".webp"
	}
	return ".jpg"
}

var (
	Thumbnail = Preset{
		Name:      "thumbnail",
		MaxWidth:  400,
		MaxHeight: 300,
		Format:    JPEG,
		Quality:   78,
		Decode: decode.Options{
			HalfSize:      true,
			CameraWB:      true,
			Interpolation: 1,
		},
	}

	HighQuality = Preset{
		Name:      "high-quality",
		MaxWidth:  1920,
		MaxHeight: 1440,
		Format:    JPEG,
		Quality:   95,
		Decode: decode.Options{
			AutoWB:        true,
			SixteenBit:    true,
			Interpolation: 3,
		},
	}

	// Baseline keeps the parameters of the oldest service revision.
	Baseline = Preset{
		Name:      "baseline",
		MaxWidth:  800,
		MaxHeight: 600,
		Format:    JPEG,
		Quality:   100,
		Decode: decode.Options{
			HalfSize: true,
			CameraWB: true,
		},
	}

	WebPPreview = Preset{
		Name:      "webp-preview",
		MaxWidth:  400,
		MaxHeight: 300,
		Format:    WebP,
		Quality:   80,
		Decode: decode.Options{
			HalfSize:      true,
			CameraWB:      true,
			Interpolation: 1,
		},
	}
)
