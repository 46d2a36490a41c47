package model

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
)

const (
	noiseAlpha  = 2.
	noiseBeta   = 2.
	noiseOctave = 3
	noiseScale  = 0.15
)

// SeedNoise fills the grid from 2D Perlin noise: a cell is alive where the
// noise value exceeds threshold. Noise values lie roughly in [-1, 1].
func (g *Grid) SeedNoise(threshold float64) error {
	if math.IsNaN(threshold) || threshold < -1 || threshold > 1 {
		return errors.Wrapf(ErrInvalidArgument, "[Grid.SeedNoise] threshold %v not in [-1,1]", threshold)
	}

	seed := rand.Int64()
	if g.rng != nil {
		seed = g.rng.Int64()
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	for y := range g.height {
		for x := range g.width {
			v := p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
			g.put(x, y, v > threshold)
		}
	}
	return nil
}
