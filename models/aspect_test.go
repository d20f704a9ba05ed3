package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAspectRatioRatio(t *testing.T) {
	cases := []struct {
		aspect AspectRatio
		want   float64
	}{
		{Aspect16x9, 16.0 / 9.0},
		{Aspect9x16, 9.0 / 16.0},
		{Aspect1x1, 1},
		{Aspect4x3, 4.0 / 3.0},
		{Aspect3x4, 3.0 / 4.0},
		{Aspect21x9, 21.0 / 9.0},
	}
	for _, tc := range cases {
		t.Run(string(tc.aspect), func(t *testing.T) {
			r, err := tc.aspect.Ratio()
			require.NoError(t, err)
			require.InDelta(t, tc.want, r, 1e-9)
		})
	}
}

func TestAspectRatioRatioMalformed(t *testing.T) {
	for _, bad := range []AspectRatio{"", "16", "16:0", "a:b"} {
		_, err := bad.Ratio()
		require.Error(t, err, "aspect %q", bad)
	}
}

func TestAspectRatioIsVertical(t *testing.T) {
	require.True(t, Aspect9x16.IsVertical())
	require.True(t, Aspect3x4.IsVertical())
	require.False(t, Aspect16x9.IsVertical())
	require.False(t, Aspect1x1.IsVertical())
}

func TestAspectRatioDimensions(t *testing.T) {
	w, h := Aspect16x9.Dimensions(1920, 0)
	require.Equal(t, 1920.0, w)
	require.InDelta(t, 1080.0, h, 1e-6)

	w, h = Aspect16x9.Dimensions(0, 1080)
	require.InDelta(t, 1920.0, w, 1e-6)
	require.Equal(t, 1080.0, h)

	// No target: a 100-wide box.
	w, h = Aspect1x1.Dimensions(0, 0)
	require.Equal(t, 100.0, w)
	require.Equal(t, 100.0, h)
}

func TestAspectRatioValid(t *testing.T) {
	require.True(t, Aspect21x9.Valid())
	require.False(t, AspectRatio("2:1").Valid())
}

func TestValidCameraMove(t *testing.T) {
	require.True(t, ValidCameraMove(CameraStatic))
	require.True(t, ValidCameraMove(CameraOrbitRight))
	require.False(t, ValidCameraMove("crash_zoom"))
}
