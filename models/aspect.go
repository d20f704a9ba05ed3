package models

import (
	"fmt"
	"strconv"
	"strings"
)

type AspectRatio string

const (
	Aspect16x9 AspectRatio = "16:9"
	Aspect9x16 AspectRatio = "9:16"
	Aspect1x1  AspectRatio = "1:1"
	Aspect4x3  AspectRatio = "4:3"
	Aspect3x4  AspectRatio = "3:4"
	Aspect21x9 AspectRatio = "21:9"
)

var aspectRatios = map[AspectRatio]bool{
	Aspect16x9: true,
	Aspect9x16: true,
	Aspect1x1:  true,
	Aspect4x3:  true,
	Aspect3x4:  true,
	Aspect21x9: true,
}

func (a AspectRatio) Valid() bool {
	return aspectRatios[a]
}

// Ratio returns width/height as a float, e.g. 16:9 -> 1.777...
func (a AspectRatio) Ratio() (float64, error) {
	parts := strings.SplitN(string(a), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed aspect ratio %q", a)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed aspect ratio %q", a)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || h == 0 {
		return 0, fmt.Errorf("malformed aspect ratio %q", a)
	}
	return w / h, nil
}

func (a AspectRatio) IsVertical() bool {
	r, err := a.Ratio()
	if err != nil {
		return false
	}
	return r < 1
}

// Dimensions resolves pixel dimensions for a target width or height. When
// both are zero a 100-wide box is assumed.
func (a AspectRatio) Dimensions(targetWidth, targetHeight float64) (width, height float64) {
	r, err := a.Ratio()
	if err != nil {
		r = 1
	}
	switch {
	case targetWidth > 0:
		return targetWidth, targetWidth / r
	case targetHeight > 0:
		return targetHeight * r, targetHeight
	default:
		return 100, 100 / r
	}
}
