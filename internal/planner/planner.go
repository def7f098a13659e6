// Package planner derives a six-day training split from body metrics.
package planner

// Split identifies which of the three template plans was chosen.
type Split string

const (
	SplitFatLoss    Split = "fat-loss"
	SplitFoundation Split = "full-body"
	SplitPPL        Split = "push-pull-legs"
)

const (
	fatLossThreshold   = 27.0
	lowMuscleThreshold = 30.0
)

// PlanDay is one training day of a suggested week.
type PlanDay struct {
	Day       string   `json:"day" yaml:"day"`
	Focus     string   `json:"focus" yaml:"focus"`
	Exercises []string `json:"exercises" yaml:"exercises"`
}

// Profile carries the metrics the planner looks at. Nil values count as zero.
type Profile struct {
	MuscleWeightKg *float64
	FatPercentage  *float64
}

// Choose picks the split: high body fat first, then low muscle mass, otherwise push/pull/legs.
func Choose(p Profile) Split {
	fat := valueOrZero(p.FatPercentage)
	muscle := valueOrZero(p.MuscleWeightKg)

	switch {
	case fat >= fatLossThreshold:
		return SplitFatLoss
	case muscle < lowMuscleThreshold:
		return SplitFoundation
	default:
		return SplitPPL
	}
}

// Suggest returns the six-day plan for p. The returned slice is freshly allocated.
func Suggest(p Profile) []PlanDay {
	return copyPlan(templates[Choose(p)])
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func copyPlan(src []PlanDay) []PlanDay {
	out := make([]PlanDay, len(src))
	for i, d := range src {
		out[i] = PlanDay{Day: d.Day, Focus: d.Focus, Exercises: append([]string(nil), d.Exercises...)}
	}
	return out
}

var templates = map[Split][]PlanDay{
	SplitFatLoss: {
		{Day: "Day 1", Focus: "Upper Push", Exercises: []string{"Bench Press", "Overhead Press", "Dips"}},
		{Day: "Day 2", Focus: "Lower + Cardio", Exercises: []string{"Squat", "Romanian Deadlift", "20 min Incline Walk"}},
		{Day: "Day 3", Focus: "Upper Pull", Exercises: []string{"Barbell Row", "Lat Pulldown", "Face Pull"}},
		{Day: "Day 4", Focus: "Conditioning", Exercises: []string{"Bike Intervals", "Core Circuit"}},
		{Day: "Day 5", Focus: "Leg Hypertrophy", Exercises: []string{"Leg Press", "Walking Lunge", "Hamstring Curl"}},
		{Day: "Day 6", Focus: "Upper Hypertrophy", Exercises: []string{"Incline DB Press", "Cable Row", "Lateral Raise"}},
	},
	SplitFoundation: {
		{Day: "Day 1", Focus: "Full Body A", Exercises: []string{"Squat", "Bench Press", "Row"}},
		{Day: "Day 2", Focus: "Cardio + Core", Exercises: []string{"Jog", "Plank", "Hanging Knee Raise"}},
		{Day: "Day 3", Focus: "Full Body B", Exercises: []string{"Deadlift", "Overhead Press", "Pulldown"}},
		{Day: "Day 4", Focus: "Mobility + Cardio", Exercises: []string{"Cycle", "Hip Mobility", "Abs"}},
		{Day: "Day 5", Focus: "Full Body C", Exercises: []string{"Leg Press", "Incline Press", "Seated Row"}},
		{Day: "Day 6", Focus: "Arms + Conditioning", Exercises: []string{"Curls", "Pushdowns", "Rower"}},
	},
	SplitPPL: {
		{Day: "Day 1", Focus: "Push Heavy", Exercises: []string{"Bench Press", "Overhead Press", "Triceps Pushdown"}},
		{Day: "Day 2", Focus: "Pull Heavy", Exercises: []string{"Deadlift", "Row", "Pull-Ups"}},
		{Day: "Day 3", Focus: "Legs Heavy", Exercises: []string{"Back Squat", "RDL", "Calf Raise"}},
		{Day: "Day 4", Focus: "Push Volume", Exercises: []string{"Incline DB Press", "Machine Press", "Lateral Raise"}},
		{Day: "Day 5", Focus: "Pull Volume", Exercises: []string{"Pulldown", "Seated Row", "Rear Delt Fly"}},
		{Day: "Day 6", Focus: "Leg Volume + Cardio", Exercises: []string{"Leg Press", "Lunge", "15 min Finisher"}},
	},
}
