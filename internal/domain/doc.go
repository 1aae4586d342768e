// Package domain turns raw fitness-tracker sensor packages into workout
// summaries.
//
// # Sensor Packages
//
// A tracker emits one package per finished workout: an activity code and a
// flat list of numbers in a fixed positional order.
//
//	running:  [action, duration, weight]
//	walking:  [action, duration, weight, height]
//	swimming: [action, duration, weight, pool_length, lap_count]
//
// action is the step count (strokes for swimming), duration is in hours,
// weight in kilograms, height in centimeters, pool length in meters.
// Codes are the long tags "running", "walking", "swimming" or the device
// short tags "RUN", "WLK", "SWM". Anything else is rejected with
// [ErrUnknownActivity]; there is no default activity.
//
// # Formulas
//
// Distance is action times a per-activity step length (0.65 m on land,
// 1.38 m per stroke in the pool), converted to kilometers. Mean speed is
// distance over duration, except swimming, which uses pool geometry:
//
//	pool_length * lap_count / 1000 / duration
//
// Calories:
//
//	running:  (18 * speed + 1.79) * weight / 1000 * duration_min
//	walking:  (0.035 * weight + (speed_ms)^2 / height_m * 0.029 * weight) * duration_min
//	swimming: (speed + 1.1) * 2 * weight * duration
//
// speed_ms is km/h scaled by 0.278. A zero duration, or a zero height when
// walking, is reported as [ErrDivisionByZero] instead of producing Inf or NaN.
//
// Values are delivered as floats; action and lap count are truncated toward
// zero when converted to integers. Fractional, negative or out-of-range
// values are not validated.
//
// # Output
//
// [Measurement.Message] renders the line printed for each workout; every
// number is shown with three decimals.
package domain
