package ml

import (
	"errors"
	"math"
)

// LogisticRegression is a binary classifier over dense feature vectors.
// Classes[1] is the positive class whose probability PredictProba returns.
type LogisticRegression struct {
	Classes []string  `json:"classes"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// ErrNotTrained is returned when predicting with an empty model.
var ErrNotTrained = errors.New("model not trained")

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Fit trains with full-batch gradient descent. y[i] must be 0 or 1,
// where 1 means Classes[1].
func (m *LogisticRegression) Fit(x [][]float64, y []int, epochs int, lr float64) {
	if len(x) == 0 {
		return
	}
	dim := len(x[0])
	m.Weights = make([]float64, dim)
	m.Bias = 0

	n := float64(len(x))
	gradW := make([]float64, dim)
	for epoch := 0; epoch < epochs; epoch++ {
		for i := range gradW {
			gradW[i] = 0
		}
		var gradB float64
		for i, xi := range x {
			z := m.Bias
			for j, xj := range xi {
				z += m.Weights[j] * xj
			}
			diff := sigmoid(z) - float64(y[i])
			for j, xj := range xi {
				if xj != 0 {
					gradW[j] += diff * xj
				}
			}
			gradB += diff
		}
		for j := range m.Weights {
			m.Weights[j] -= lr * gradW[j] / n
		}
		m.Bias -= lr * gradB / n
	}
}

// PredictProba returns P(Classes[1] | x).
func (m *LogisticRegression) PredictProba(x []float64) (float64, error) {
	if len(m.Weights) == 0 {
		return 0, ErrNotTrained
	}
	z := m.Bias
	for j, xj := range x {
		if xj != 0 && j < len(m.Weights) {
			z += m.Weights[j] * xj
		}
	}
	return sigmoid(z), nil
}

// Predict returns the winning class label.
func (m *LogisticRegression) Predict(x []float64) (string, error) {
	p, err := m.PredictProba(x)
	if err != nil {
		return "", err
	}
	if p >= 0.5 {
		return m.Classes[1], nil
	}
	return m.Classes[0], nil
}
