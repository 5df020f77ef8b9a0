package nlp

import "math"

// CalculateMoodScore combines sentiment polarity and peak emotion
// intensity into a 0-10 integer:
//
//	base = (score + 1) * 5
//	adjusted = base + 2*intensity  if score > 0
//	         = base - 2*intensity  otherwise (including score == 0)
//	mood = round(clamp(adjusted, 0, 10))
func CalculateMoodScore(sentimentScore, emotionIntensity float64) int {
	base := (sentimentScore + 1) * 5

	var adjusted float64
	if sentimentScore > 0 {
		adjusted = base + 2*emotionIntensity
	} else {
		adjusted = base - 2*emotionIntensity
	}

	if adjusted < 0 {
		adjusted = 0
	} else if adjusted > 10 {
		adjusted = 10
	}
	return int(math.Round(adjusted))
}

// PeakIntensity returns the maximum emotion score, defaulting to 0.5
// for an empty distribution.
func PeakIntensity(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0.5
	}
	max := 0.0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	return max
}
