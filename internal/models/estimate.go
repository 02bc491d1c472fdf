package models

import (
	"regexp"
	"strconv"
)

// Difficulty is a rough workout intensity band.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyAdvanced Difficulty = "advanced"
)

const (
	warmupMinutes      = 10
	cooldownMinutes    = 5
	minutesPerExercise = 5 // per exercise including rest
	baseCalories       = 50
)

var firstNumber = regexp.MustCompile(`\d+`)

// EstimateDurationMinutes estimates total workout length for a template list:
// warmup plus a fixed per-exercise allowance plus cooldown.
func EstimateDurationMinutes(templates []ExerciseTemplate) int {
	if len(templates) == 0 {
		return 0
	}
	return warmupMinutes + len(templates)*minutesPerExercise + cooldownMinutes
}

// EstimateCalories gives a coarse calorie figure from sets, reps, and weight.
// Rep ranges like "8-12" count their lower bound.
func EstimateCalories(templates []ExerciseTemplate) int {
	if len(templates) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range templates {
		sets, _ := strconv.Atoi(t.Sets)
		weight, _ := strconv.ParseFloat(t.Weight, 64)
		reps := leadingNumber(t.Reps)
		total += weight * float64(reps) * float64(sets) / 10
	}
	return int(total + 0.5 + baseCalories)
}

// EstimateDifficulty bands the average per-exercise load score.
func EstimateDifficulty(templates []ExerciseTemplate) Difficulty {
	if len(templates) == 0 {
		return DifficultyEasy
	}
	score := 0.0
	for _, t := range templates {
		sets, _ := strconv.Atoi(t.Sets)
		weight, _ := strconv.ParseFloat(t.Weight, 64)
		reps := leadingNumber(t.Reps)
		score += weight*0.1 + float64(reps)*0.2 + float64(sets)*2
	}
	avg := score / float64(len(templates))
	switch {
	case avg < 10:
		return DifficultyEasy
	case avg < 20:
		return DifficultyModerate
	case avg < 35:
		return DifficultyHard
	default:
		return DifficultyAdvanced
	}
}

func leadingNumber(s string) int {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}
