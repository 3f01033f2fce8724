package regionplot

import (
	"cmp"

	"gonum.org/v1/gonum/mat"
)

// Classifier predicts one label per row of X. X has two columns.
type Classifier[L cmp.Ordered] interface {
	Predict(X mat.Matrix) ([]L, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc[L cmp.Ordered] func(X mat.Matrix) ([]L, error)

func (f ClassifierFunc[L]) Predict(X mat.Matrix) ([]L, error) { return f(X) }
