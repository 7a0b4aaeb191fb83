package isoline

import (
	"github.com/tripledoublev/spores.garden-sub000/palette"
	"github.com/tripledoublev/spores.garden-sub000/seed"
)

// Config parametrizes one contour rendering.
type Config struct {
	NoiseScale   float64 `json:"noiseScale"`
	NoiseOctaves int     `json:"noiseOctaves"`
	ContourCount int     `json:"contourCount"`
	StrokeWidth  float64 `json:"strokeWidth"`
	ThresholdMin float64 `json:"thresholdMin"`
	ThresholdMax float64 `json:"thresholdMax"`
	StrokeColor  string  `json:"strokeColor"`
	FillColor    string  `json:"fillColor"`
}

// NewConfig derives contour parameters from the identifier hash. Each
// numeric field reads its own shifted slice of the hash; the shift
// amounts are frozen, like the flower draw order.
func NewConfig(id string, pal palette.Palette) Config {
	h := int64(seed.Hash(id))
	if h < 0 {
		h = -h
	}
	return Config{
		NoiseScale:   0.02 + float64((h>>2)%16)*0.001,
		NoiseOctaves: 2 + int((h>>6)%3),
		ContourCount: 4 + int((h>>9)%8),
		StrokeWidth:  0.8 + float64((h>>13)%10)*0.12,
		ThresholdMin: 0.25 + float64((h>>17)%10)*0.01,
		ThresholdMax: 0.65 + float64((h>>21)%10)*0.01,
		StrokeColor:  pal.Border,
		FillColor:    pal.BorderMuted,
	}
}

// thresholds spreads ContourCount levels evenly across the threshold
// band, endpoints included.
func (c Config) thresholds() []float64 {
	n := c.ContourCount
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{(c.ThresholdMin + c.ThresholdMax) / 2}
	}
	out := make([]float64, n)
	span := c.ThresholdMax - c.ThresholdMin
	for i := range out {
		out[i] = c.ThresholdMin + span*float64(i)/float64(n-1)
	}
	return out
}
