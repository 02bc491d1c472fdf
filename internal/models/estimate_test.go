package models

import "testing"

// TestEstimateDurationMinutes verifies the warmup + per-exercise + cooldown
// formula and the zero-exercise case.
func TestEstimateDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"empty", 0, 0},
		{"single", 1, 20},
		{"full program", 8, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := make([]ExerciseTemplate, tt.count)
			if got := EstimateDurationMinutes(templates); got != tt.want {
				t.Errorf("EstimateDurationMinutes(%d exercises) = %d, want %d", tt.count, got, tt.want)
			}
		})
	}
}

// TestEstimateCalories verifies the sets*reps*weight formula, the base
// calorie floor, and lower-bound parsing of rep ranges.
func TestEstimateCalories(t *testing.T) {
	if got := EstimateCalories(nil); got != 0 {
		t.Errorf("EstimateCalories(nil) = %d, want 0", got)
	}

	// 70kg * 8 reps * 4 sets / 10 = 224, plus 50 base
	templates := []ExerciseTemplate{
		{Sets: "4", Reps: "8-12", Weight: "70"},
	}
	if got := EstimateCalories(templates); got != 274 {
		t.Errorf("EstimateCalories = %d, want 274", got)
	}

	// Bodyweight exercise contributes only the base
	bodyweight := []ExerciseTemplate{
		{Sets: "3", Reps: "10-12"},
	}
	if got := EstimateCalories(bodyweight); got != 50 {
		t.Errorf("EstimateCalories(bodyweight) = %d, want 50", got)
	}
}

// TestEstimateDifficulty verifies the banding thresholds.
func TestEstimateDifficulty(t *testing.T) {
	tests := []struct {
		name      string
		templates []ExerciseTemplate
		want      Difficulty
	}{
		{"empty", nil, DifficultyEasy},
		// 0*0.1 + 10*0.2 + 3*2 = 8 → easy
		{"bodyweight", []ExerciseTemplate{{Sets: "3", Reps: "10"}}, DifficultyEasy},
		// 40*0.1 + 12*0.2 + 3*2 = 12.4 → moderate
		{"light machine", []ExerciseTemplate{{Sets: "3", Reps: "12", Weight: "40"}}, DifficultyModerate},
		// scores 20 and 23.6, average 21.8 → hard
		{"heavy", []ExerciseTemplate{
			{Sets: "4", Reps: "10", Weight: "100"},
			{Sets: "4", Reps: "8", Weight: "140"},
		}, DifficultyHard},
		{"advanced", []ExerciseTemplate{{Sets: "5", Reps: "10", Weight: "300"}}, DifficultyAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDifficulty(tt.templates); got != tt.want {
				t.Errorf("EstimateDifficulty = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDurationMinutes verifies session duration derivation from timestamps.
func TestDurationMinutes(t *testing.T) {
	s := WorkoutSession{}
	if got := s.DurationMinutes(); got != 0 {
		t.Errorf("DurationMinutes without end = %d, want 0", got)
	}
}
