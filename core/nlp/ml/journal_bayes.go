package ml

import (
	"math"
	"sort"
)

// NaiveBayes is a multinomial naive Bayes classifier over non-negative
// feature vectors (TF-IDF weights work as fractional counts).
type NaiveBayes struct {
	Classes        []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Fit estimates per-class feature log-probabilities with Laplace
// smoothing (alpha).
func (m *NaiveBayes) Fit(x [][]float64, labels []string, alpha float64) {
	if len(x) == 0 {
		return
	}
	dim := len(x[0])

	classSet := make(map[string]bool)
	for _, label := range labels {
		classSet[label] = true
	}
	m.Classes = make([]string, 0, len(classSet))
	for class := range classSet {
		m.Classes = append(m.Classes, class)
	}
	sort.Strings(m.Classes)

	classIdx := make(map[string]int, len(m.Classes))
	for i, class := range m.Classes {
		classIdx[class] = i
	}

	counts := make([][]float64, len(m.Classes))
	totals := make([]float64, len(m.Classes))
	docs := make([]float64, len(m.Classes))
	for i := range counts {
		counts[i] = make([]float64, dim)
	}

	for i, xi := range x {
		c := classIdx[labels[i]]
		docs[c]++
		for j, xj := range xi {
			if xj > 0 {
				counts[c][j] += xj
				totals[c] += xj
			}
		}
	}

	n := float64(len(x))
	m.ClassLogPrior = make([]float64, len(m.Classes))
	m.FeatureLogProb = make([][]float64, len(m.Classes))
	for c := range m.Classes {
		m.ClassLogPrior[c] = math.Log(docs[c] / n)
		m.FeatureLogProb[c] = make([]float64, dim)
		denom := totals[c] + alpha*float64(dim)
		for j := 0; j < dim; j++ {
			m.FeatureLogProb[c][j] = math.Log((counts[c][j] + alpha) / denom)
		}
	}
}

// PredictProba returns the posterior distribution over classes.
func (m *NaiveBayes) PredictProba(x []float64) (map[string]float64, error) {
	if len(m.Classes) == 0 {
		return nil, ErrNotTrained
	}

	logJoint := make([]float64, len(m.Classes))
	for c := range m.Classes {
		score := m.ClassLogPrior[c]
		probs := m.FeatureLogProb[c]
		for j, xj := range x {
			if xj > 0 && j < len(probs) {
				score += xj * probs[j]
			}
		}
		logJoint[c] = score
	}

	// Log-sum-exp normalization
	maxLog := logJoint[0]
	for _, v := range logJoint[1:] {
		if v > maxLog {
			maxLog = v
		}
	}
	var sum float64
	for c := range logJoint {
		logJoint[c] = math.Exp(logJoint[c] - maxLog)
		sum += logJoint[c]
	}

	result := make(map[string]float64, len(m.Classes))
	for c, class := range m.Classes {
		result[class] = logJoint[c] / sum
	}
	return result, nil
}

// Predict returns the most probable class and its probability.
func (m *NaiveBayes) Predict(x []float64) (string, float64, error) {
	probs, err := m.PredictProba(x)
	if err != nil {
		return "", 0, err
	}
	best := ""
	bestP := -1.0
	for _, class := range m.Classes {
		if p := probs[class]; p > bestP {
			best = class
			bestP = p
		}
	}
	return best, bestP, nil
}
