// models/enums.go - fixed enumerations shared across entities
package models

// FitnessLevel is the three-step ordinal scale used for user fitness, workout
// difficulty and workout targeting.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

func (l FitnessLevel) Valid() bool {
	switch l {
	case FitnessBeginner, FitnessIntermediate, FitnessAdvanced:
		return true
	}
	return false
}

// ActivityType enumerates the recognized activity categories.
type ActivityType string

const (
	ActivityRunning  ActivityType = "running"
	ActivityCycling  ActivityType = "cycling"
	ActivitySwimming ActivityType = "swimming"
	ActivityGym      ActivityType = "gym"
	ActivityYoga     ActivityType = "yoga"
	ActivityWalking  ActivityType = "walking"
	ActivityOther    ActivityType = "other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityRunning, ActivityCycling, ActivitySwimming,
		ActivityGym, ActivityYoga, ActivityWalking, ActivityOther:
		return true
	}
	return false
}

// ActivityTypes lists every valid activity type, in declaration order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityRunning, ActivityCycling, ActivitySwimming,
		ActivityGym, ActivityYoga, ActivityWalking, ActivityOther,
	}
}
