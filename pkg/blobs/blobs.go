// Package blobs generates labelled 2D point clouds for trying out
// classifiers.
package blobs

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// truncation of a blob in standard deviations
const spreadLimit = 4

// bounded draws normal random numbers restricted to [min, max].
type bounded struct {
	dist     distuv.Normal
	min, max float64
}

// newBounded returns a generator for N(mean, stddev) truncated to
// [min, max] by rejection.
func newBounded(mean, stddev, min, max float64, src rand.Source) (*bounded, error) {
	if min >= max {
		return nil, errors.Errorf("min %v must be less than max %v", min, max)
	}
	if stddev <= 0 {
		return nil, errors.Errorf("stddev must be positive, got %v", stddev)
	}
	if mean < min || mean > max {
		return nil, errors.Errorf("mean %v outside [%v, %v]", mean, min, max)
	}
	return &bounded{
		dist: distuv.Normal{Mu: mean, Sigma: stddev, Src: src},
		min:  min,
		max:  max,
	}, nil
}

func (b *bounded) Rand() float64 {
	for {
		v := b.dist.Rand()
		if v >= b.min && v <= b.max {
			return v
		}
	}
}

// Circle returns k centers evenly spaced on a circle of radius r around the
// origin, starting on the positive x axis.
func Circle(k int, r float64) [][2]float64 {
	out := make([][2]float64, k)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(k)
		out[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return out
}

// Generate draws perClass points around every center. Both axes use the
// same spread, truncated at four standard deviations. Labels are the
// center indices.
func Generate(centers [][2]float64, perClass int, spread float64, src rand.Source) (*mat.Dense, []int, error) {
	if len(centers) == 0 || perClass <= 0 {
		return nil, nil, errors.New("need at least one center and one point per class")
	}
	n := len(centers) * perClass
	X := mat.NewDense(n, 2, nil)
	y := make([]int, 0, n)
	for k, c := range centers {
		gx, err := newBounded(c[0], spread, c[0]-spreadLimit*spread, c[0]+spreadLimit*spread, src)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "center %d", k)
		}
		gy, err := newBounded(c[1], spread, c[1]-spreadLimit*spread, c[1]+spreadLimit*spread, src)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "center %d", k)
		}
		for range perClass {
			X.Set(len(y), 0, gx.Rand())
			X.Set(len(y), 1, gy.Rand())
			y = append(y, k)
		}
	}
	return X, y, nil
}

// TestSplit picks round(fraction*n) distinct indices in [0, n), sorted.
func TestSplit(n int, fraction float64, src rand.Source) []int {
	k := int(math.Round(math.Max(0, math.Min(1, fraction)) * float64(n)))
	if k == 0 {
		return nil
	}
	idx := rand.New(src).Perm(n)[:k]
	slices.Sort(idx)
	return idx
}
