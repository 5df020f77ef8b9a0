// Package ml implements the native classifier stack behind the trained
// tiers of the analysis pipeline: a TF-IDF vectorizer, binary logistic
// regression, and multinomial naive Bayes, with JSON artifact persistence.
package ml

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// wordPattern matches alphanumeric tokens of at least two characters.
var wordPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Tokenize lowercases text, drops English stopwords and splits the
// remainder into feature tokens. Stopwords carry no class signal and
// left in place they flatten the naive Bayes posteriors.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(stopwords.CleanString(strings.ToLower(text), "en", false), -1)
}

// Vectorizer maps text to L2-normalized TF-IDF vectors over a fixed
// vocabulary learned at fit time.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// NewVectorizer returns an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{Vocabulary: make(map[string]int)}
}

// Fit learns the vocabulary and inverse document frequencies.
// IDF uses smoothed counts: ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform converts one document into a dense TF-IDF vector.
// Out-of-vocabulary tokens are ignored.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, tok := range Tokenize(doc) {
		if idx, ok := v.Vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		if vec[i] > 0 {
			vec[i] *= v.IDF[i]
			norm += vec[i] * vec[i]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// FitTransform fits on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	v.Fit(docs)
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// Size returns the vocabulary size.
func (v *Vectorizer) Size() int {
	return len(v.IDF)
}
