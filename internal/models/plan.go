package models

// PlanDay is one entry of an owner's weekly training plan. Day is 0 (Sunday)
// through 6. Type is a program identifier or "rest"/"" for off days.
type PlanDay struct {
	OwnerID   int    `json:"owner_id"`
	Day       int    `json:"day"`
	Type      string `json:"workout_type"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Note      string `json:"note,omitempty"`
}
