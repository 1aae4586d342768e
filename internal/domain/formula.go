package domain

import "fmt"

const (
	mInKm     = 1000
	minInH    = 60
	cmInM     = 100
	kmhInMsec = 0.278

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// distance returns the distance covered in km for the given number of actions.
func distance(action int, stepLength float64) float64 {
	return float64(action) * stepLength / mInKm
}

// meanSpeed returns the average speed in km/h.
func meanSpeed(distanceKm, duration float64) (float64, error) {
	if duration == 0 {
		return 0, fmt.Errorf("%w: duration", ErrDivisionByZero)
	}
	return distanceKm / duration, nil
}

func swimmingMeanSpeed(poolLength float64, lapCount int, duration float64) (float64, error) {
	if duration == 0 {
		return 0, fmt.Errorf("%w: duration", ErrDivisionByZero)
	}
	return poolLength * float64(lapCount) / mInKm / duration, nil
}

func runningSpentCalories(speed, weight, duration float64) float64 {
	// explicit conversion keeps the product from being fused into an FMA
	return (float64(runningCaloriesMeanSpeedMultiplier*speed) + runningCaloriesMeanSpeedShift) *
		weight / mInKm * (duration * minInH)
}

func walkingSpentCalories(speed, weight, height, duration float64) (float64, error) {
	if height == 0 {
		return 0, fmt.Errorf("%w: height", ErrDivisionByZero)
	}
	speedMs := speed * kmhInMsec
	return (walkingCaloriesWeightMultiplier*weight +
		speedMs*speedMs/(height/cmInM)*walkingSpeedHeightMultiplier*weight) *
		(duration * minInH), nil
}

func swimmingSpentCalories(speed, weight, duration float64) float64 {
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight * duration
}
