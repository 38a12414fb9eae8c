package enums

import "fmt"

// GymType distinguishes bookable facility listings.
type GymType string

const (
	GymTypeGym     GymType = "GYM"
	GymTypeTrainer GymType = "TRAINER"
	GymTypeClass   GymType = "CLASS"
)

var validGymTypes = []GymType{
	GymTypeGym,
	GymTypeTrainer,
	GymTypeClass,
}

// String implements fmt.Stringer.
func (g GymType) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GymType.
func (g GymType) IsValid() bool {
	for _, candidate := range validGymTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGymType converts raw input into a GymType.
func ParseGymType(value string) (GymType, error) {
	for _, candidate := range validGymTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gym type %q", value)
}
