package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownActivity is returned for activity codes outside the supported set.
	ErrUnknownActivity = errors.New("unknown activity code")
	// ErrArgumentCount is returned when a package carries the wrong number of values for its activity.
	ErrArgumentCount = errors.New("invalid argument count")
	// ErrDivisionByZero is returned when a formula would divide by a zero
	// duration or a zero height.
	ErrDivisionByZero = errors.New("division by zero")
)

// Activity identifies the kind of workout a package describes.
type Activity string

const (
	ActivityRunning  Activity = "running"
	ActivityWalking  Activity = "walking"
	ActivitySwimming Activity = "swimming"
)

// ParseActivity maps a sensor activity code to an Activity. Both the long
// tags and the device short tags are accepted.
func ParseActivity(code string) (Activity, error) {
	switch code {
	case "running", "RUN":
		return ActivityRunning, nil
	case "walking", "WLK":
		return ActivityWalking, nil
	case "swimming", "SWM":
		return ActivitySwimming, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActivity, code)
	}
}

// Label is the workout type shown in the summary line.
func (a Activity) Label() string {
	switch a {
	case ActivityRunning:
		return "Running"
	case ActivityWalking:
		return "SportsWalking"
	case ActivitySwimming:
		return "Swimming"
	default:
		return ""
	}
}

// arity is the number of positional values a package of this activity carries.
func (a Activity) arity() int {
	switch a {
	case ActivityRunning:
		return 3
	case ActivityWalking:
		return 4
	case ActivitySwimming:
		return 5
	default:
		return 0
	}
}
