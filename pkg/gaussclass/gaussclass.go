// Package gaussclass classifies 2D points by the most probable of a set of
// Gaussian class densities.
package gaussclass

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Class is one Gaussian component as stored in a classes JSON file.
type Class struct {
	Title     string        `json:"title"`
	Center    [2]float64    `json:"center"`
	CovMatrix [2][2]float64 `json:"cov_matrix"`
}

func determinant(m [2][2]float64) float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// ReadClasses reads a JSON array of classes.
func ReadClasses(filename string) ([]Class, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var classes []Class
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", filename)
	}
	return classes, nil
}

// Model holds the densities of the classes. The label of a class is its
// index in Classes.
type Model struct {
	Classes []Class
	dists   []*distmv.Normal
}

// NewModel validates the classes and builds their densities. src drives
// Sample and may be nil when sampling is not needed.
func NewModel(classes []Class, src rand.Source) (*Model, error) {
	if len(classes) == 0 {
		return nil, errors.New("no classes")
	}
	m := &Model{Classes: classes, dists: make([]*distmv.Normal, len(classes))}
	for i, c := range classes {
		cm := c.CovMatrix
		if cm[0][1] != cm[1][0] {
			return nil, errors.Errorf("class %d (%s): covariance matrix is not symmetric", i, c.Title)
		}
		if determinant(cm) <= 0 {
			return nil, errors.Errorf("class %d (%s): covariance matrix is not invertible", i, c.Title)
		}
		sigma := mat.NewSymDense(2, []float64{cm[0][0], cm[0][1], cm[1][0], cm[1][1]})
		d, ok := distmv.NewNormal(c.Center[:], sigma, src)
		if !ok {
			return nil, errors.Errorf("class %d (%s): covariance matrix is not positive definite", i, c.Title)
		}
		m.dists[i] = d
	}
	return m, nil
}

func (m *Model) logProbs(point []float64, dst []float64) []float64 {
	for i, d := range m.dists {
		dst[i] = d.LogProb(point)
	}
	return dst
}

// Classify returns the normalized probabilities of point belonging to each
// class.
func (m *Model) Classify(point [2]float64) []float64 {
	lp := m.logProbs(point[:], make([]float64, len(m.dists)))
	norm := floats.LogSumExp(lp)
	for i := range lp {
		lp[i] = math.Exp(lp[i] - norm)
	}
	return lp
}

// Predict returns the index of the most probable class for every row of X.
func (m *Model) Predict(X mat.Matrix) ([]int, error) {
	r, c := X.Dims()
	if c < 2 {
		return nil, errors.Errorf("need at least 2 columns, got %d", c)
	}
	out := make([]int, r)
	lp := make([]float64, len(m.dists))
	pt := make([]float64, 2)
	for i := range r {
		pt[0], pt[1] = X.At(i, 0), X.At(i, 1)
		out[i] = floats.MaxIdx(m.logProbs(pt, lp))
	}
	return out, nil
}

// Sample draws perClass points from every class density.
func (m *Model) Sample(perClass int) (*mat.Dense, []int) {
	n := perClass * len(m.dists)
	X := mat.NewDense(n, 2, nil)
	y := make([]int, 0, n)
	row := make([]float64, 2)
	for k, d := range m.dists {
		for range perClass {
			d.Rand(row)
			X.SetRow(len(y), row)
			y = append(y, k)
		}
	}
	return X, y
}
