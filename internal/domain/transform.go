package domain

import "fmt"

// ReadPackage parses a raw sensor package and computes its measurement.
func ReadPackage(pkg Package) (Measurement, error) {
	activity, err := ParseActivity(pkg.Code)
	if err != nil {
		return Measurement{}, err
	}

	reading, err := NewReading(activity, pkg.Values)
	if err != nil {
		return Measurement{}, err
	}

	return Compute(reading)
}

// Compute applies the formulas of the reading's activity.
func Compute(r Reading) (Measurement, error) {
	m := Measurement{
		Label:    r.Activity.Label(),
		Duration: r.Duration,
	}

	var err error
	switch r.Activity {
	case ActivityRunning:
		m.Distance = distance(r.Action, lenStep)
		if m.Speed, err = meanSpeed(m.Distance, r.Duration); err != nil {
			return Measurement{}, fmt.Errorf("compute %s: %w", r.Activity, err)
		}
		m.Calories = runningSpentCalories(m.Speed, r.Weight, r.Duration)
	case ActivityWalking:
		m.Distance = distance(r.Action, lenStep)
		if m.Speed, err = meanSpeed(m.Distance, r.Duration); err != nil {
			return Measurement{}, fmt.Errorf("compute %s: %w", r.Activity, err)
		}
		if m.Calories, err = walkingSpentCalories(m.Speed, r.Weight, r.Height, r.Duration); err != nil {
			return Measurement{}, fmt.Errorf("compute %s: %w", r.Activity, err)
		}
	case ActivitySwimming:
		m.Distance = distance(r.Action, swimmingLenStep)
		if m.Speed, err = swimmingMeanSpeed(r.PoolLength, r.LapCount, r.Duration); err != nil {
			return Measurement{}, fmt.Errorf("compute %s: %w", r.Activity, err)
		}
		m.Calories = swimmingSpentCalories(m.Speed, r.Weight, r.Duration)
	default:
		return Measurement{}, fmt.Errorf("%w: %q", ErrUnknownActivity, string(r.Activity))
	}

	return m, nil
}
