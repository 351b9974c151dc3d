package service

import (
	"fmt"
	"math"
)

// MaxPercentage is the top of the reported score scale.
const MaxPercentage float64 = 100.0

type ScoreConverterService interface {
	// ConvertToPercentage maps a raw completion score onto 0-100.
	ConvertToPercentage(rawScore, maxScore int) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ConvertToPercentage rounds to two decimals. A survey whose questions cannot
// earn points has no percentage.
func (s *scoreConverterServiceImpl) ConvertToPercentage(rawScore, maxScore int) (float64, error) {
	if maxScore <= 0 {
		return 0, fmt.Errorf("survey has no scorable questions (max score %d)", maxScore)
	}
	if rawScore < 0 || rawScore > maxScore {
		return 0, fmt.Errorf("raw score %d is out of valid range (0-%d)", rawScore, maxScore)
	}

	percentage := float64(rawScore) / float64(maxScore) * MaxPercentage
	if percentage > MaxPercentage {
		percentage = MaxPercentage
	}
	return math.Round(percentage*100) / 100, nil
}
