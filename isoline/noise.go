package isoline

import "math"

// latticeHash mixes an integer lattice point and a seed into a value in
// [0,1). Plain multiplicative hashing on uint32, wrapping on overflow.
func latticeHash(ix, iy, seedVal int32) float64 {
	n := uint32(ix)*374761393 + uint32(iy)*668265263 + uint32(seedVal)*1013904223
	n = (n ^ (n >> 13)) * 1274126177
	n ^= n >> 16
	return float64(n&0x7fffffff) / 0x7fffffff
}

func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

// valueNoise bilinearly interpolates lattice values with a smoothstep
// fade. At integer coordinates it returns the lattice value exactly.
func valueNoise(x, y float64, seedVal int32) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	x0 := int32(fx)
	y0 := int32(fy)
	tx := fade(x - fx)
	ty := fade(y - fy)

	v00 := latticeHash(x0, y0, seedVal)
	v10 := latticeHash(x0+1, y0, seedVal)
	v01 := latticeHash(x0, y0+1, seedVal)
	v11 := latticeHash(x0+1, y0+1, seedVal)

	top := v00 + (v10-v00)*tx
	bot := v01 + (v11-v01)*tx
	return top + (bot-top)*ty
}

// fbm stacks octaves of value noise, halving amplitude and doubling
// frequency per octave, normalized back into [0,1]. Each octave shifts
// the seed so octaves do not share lattice values.
func fbm(x, y float64, octaves int, seedVal int32) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 1.0
	freq := 1.0
	total := 0.0
	for o := 0; o < octaves; o++ {
		sum += valueNoise(x*freq, y*freq, seedVal+int32(o)*1013) * amp
		total += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / total
}

// noiseField samples the fbm field at every lattice point of a res by
// res cell grid, so the result holds res+1 rows of res+1 samples.
func noiseField(res int, cfg Config, seedVal int32) [][]float64 {
	field := make([][]float64, res+1)
	for y := 0; y <= res; y++ {
		row := make([]float64, res+1)
		for x := 0; x <= res; x++ {
			row[x] = fbm(float64(x)*cfg.NoiseScale, float64(y)*cfg.NoiseScale, cfg.NoiseOctaves, seedVal)
		}
		field[y] = row
	}
	return field
}
