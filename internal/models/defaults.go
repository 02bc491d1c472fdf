package models

// DefaultTemplates is the starter exercise catalog seeded for a new owner:
// program A (chest, shoulders, triceps, core), program B (back, biceps, core),
// program C (legs, arms, core).
var DefaultTemplates = []ExerciseTemplate{
	{Type: "A", Name: "Bench Press", TargetMuscle: "chest", MachineNumber: "1", SeatHeight: "5", Sets: "4", Reps: "8-12", Weight: "70"},
	{Type: "A", Name: "Incline Dumbbell Press", TargetMuscle: "chest", MachineNumber: "2", SeatHeight: "4", Sets: "3", Reps: "10-12", Weight: "25"},
	{Type: "A", Name: "Shoulder Press", TargetMuscle: "shoulders", MachineNumber: "3", SeatHeight: "6", Sets: "4", Reps: "8-10", Weight: "45"},
	{Type: "A", Name: "Lateral Raises", TargetMuscle: "shoulders", MachineNumber: "4", SeatHeight: "5", Sets: "3", Reps: "12-15", Weight: "12"},
	{Type: "A", Name: "Tricep Dips", TargetMuscle: "triceps", Sets: "3", Reps: "10-12"},
	{Type: "A", Name: "Overhead Tricep Extension", TargetMuscle: "triceps", MachineNumber: "5", SeatHeight: "4", Sets: "3", Reps: "10-12", Weight: "20"},
	{Type: "A", Name: "Plank", TargetMuscle: "core", Sets: "3", Reps: "30-60 sec"},
	{Type: "A", Name: "Russian Twists", TargetMuscle: "core", Sets: "3", Reps: "20-30"},

	{Type: "B", Name: "Pull-ups", TargetMuscle: "back", Sets: "4", Reps: "6-10"},
	{Type: "B", Name: "Barbell Rows", TargetMuscle: "back", MachineNumber: "6", SeatHeight: "5", Sets: "4", Reps: "8-10", Weight: "60"},
	{Type: "B", Name: "Lat Pulldowns", TargetMuscle: "back", MachineNumber: "7", SeatHeight: "6", Sets: "3", Reps: "10-12", Weight: "50"},
	{Type: "B", Name: "Bicep Curls", TargetMuscle: "biceps", MachineNumber: "8", SeatHeight: "4", Sets: "4", Reps: "10-12", Weight: "15"},
	{Type: "B", Name: "Hammer Curls", TargetMuscle: "biceps", Sets: "3", Reps: "10-12", Weight: "12"},
	{Type: "B", Name: "Cable Curls", TargetMuscle: "biceps", MachineNumber: "9", SeatHeight: "5", Sets: "3", Reps: "12-15", Weight: "25"},
	{Type: "B", Name: "Dead Bug", TargetMuscle: "core", Sets: "3", Reps: "10 per side"},
	{Type: "B", Name: "Mountain Climbers", TargetMuscle: "core", Sets: "3", Reps: "20-30"},

	{Type: "C", Name: "Squats", TargetMuscle: "legs", MachineNumber: "10", SeatHeight: "7", Sets: "4", Reps: "10-15", Weight: "80"},
	{Type: "C", Name: "Romanian Deadlift", TargetMuscle: "legs", Sets: "4", Reps: "8-10", Weight: "70"},
	{Type: "C", Name: "Walking Lunges", TargetMuscle: "legs", Sets: "3", Reps: "12 per leg"},
	{Type: "C", Name: "Calf Raises", TargetMuscle: "legs", MachineNumber: "11", SeatHeight: "6", Sets: "4", Reps: "15-20", Weight: "40"},
	{Type: "C", Name: "Bicep Curls", TargetMuscle: "biceps", MachineNumber: "8", SeatHeight: "4", Sets: "3", Reps: "10-12", Weight: "15"},
	{Type: "C", Name: "Close-Grip Push-ups", TargetMuscle: "triceps", Sets: "3", Reps: "8-12"},
	{Type: "C", Name: "Leg Raises", TargetMuscle: "core", Sets: "3", Reps: "12-15"},
	{Type: "C", Name: "Bicycle Crunches", TargetMuscle: "core", Sets: "3", Reps: "20 per side"},
}
