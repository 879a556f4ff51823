package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "thumbnail bundle",
			opts: Options{HalfSize: true, CameraWB: true, Interpolation: 1},
			want: []string{"-c", "-T", "-h", "-w", "-q", "1"},
		},
		{
			name: "high quality bundle",
			opts: Options{AutoWB: true, SixteenBit: true, Interpolation: 3},
			want: []string{"-c", "-T", "-a", "-6", "-q", "3"},
		},
		{
			name: "camera wb wins over auto wb",
			opts: Options{CameraWB: true, AutoWB: true},
			want: []string{"-c", "-T", "-w", "-q", "0"},
		},
		{
			name: "defaults",
			opts: Options{},
			want: []string{"-c", "-T", "-q", "0"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildArgs(tc.opts))
		})
	}
}
