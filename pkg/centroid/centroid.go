// Package centroid implements a nearest-centroid classifier over the first
// two feature columns.
package centroid

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// NearestCentroid assigns each point the label of the closest centroid.
type NearestCentroid[L cmp.Ordered] struct {
	labels    []L // sorted
	centroids [][2]float64
}

// New builds a classifier from explicit centroids.
func New[L cmp.Ordered](centroids map[L][2]float64) (*NearestCentroid[L], error) {
	if len(centroids) == 0 {
		return nil, errors.New("no centroids")
	}
	nc := &NearestCentroid[L]{}
	for l := range centroids {
		nc.labels = append(nc.labels, l)
	}
	slices.Sort(nc.labels)
	for _, l := range nc.labels {
		nc.centroids = append(nc.centroids, centroids[l])
	}
	return nc, nil
}

// Fit computes the per-label mean of columns 0 and 1 of X.
func Fit[L cmp.Ordered](X mat.Matrix, y []L) (*NearestCentroid[L], error) {
	r, c := X.Dims()
	if c < 2 {
		return nil, errors.Errorf("need at least 2 columns, got %d", c)
	}
	if len(y) != r {
		return nil, errors.Errorf("%d labels for %d samples", len(y), r)
	}

	xs := make(map[L][]float64)
	ys := make(map[L][]float64)
	for i, l := range y {
		xs[l] = append(xs[l], X.At(i, 0))
		ys[l] = append(ys[l], X.At(i, 1))
	}
	centroids := make(map[L][2]float64, len(xs))
	for l := range xs {
		centroids[l] = [2]float64{stat.Mean(xs[l], nil), stat.Mean(ys[l], nil)}
	}
	return New(centroids)
}

// Centroid returns the centroid for l.
func (nc *NearestCentroid[L]) Centroid(l L) ([2]float64, bool) {
	i, ok := slices.BinarySearch(nc.labels, l)
	if !ok {
		return [2]float64{}, false
	}
	return nc.centroids[i], true
}

// Predict labels every row of X. Ties go to the smaller label.
func (nc *NearestCentroid[L]) Predict(X mat.Matrix) ([]L, error) {
	r, c := X.Dims()
	if c < 2 {
		return nil, errors.Errorf("need at least 2 columns, got %d", c)
	}
	out := make([]L, r)
	for i := range r {
		x, y := X.At(i, 0), X.At(i, 1)
		best, bestD := 0, math.Inf(1)
		for k, ct := range nc.centroids {
			d := math.Hypot(x-ct[0], y-ct[1])
			if d < bestD {
				best, bestD = k, d
			}
		}
		out[i] = nc.labels[best]
	}
	return out, nil
}
