package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Package is a raw sensor package: an activity code and its positional values.
type Package struct {
	Code   string
	Values []float64
}

// ID derives a deterministic identifier from the package contents, so the
// same package always logs under the same reading_id.
func (p Package) ID() string {
	parts := make([]string, 0, len(p.Values)+1)
	parts = append(parts, p.Code)
	for _, v := range p.Values {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(parts, "|"))).String()
}

// Reading is a parsed sensor package. Fields that do not apply to the
// activity are left zero.
type Reading struct {
	Activity Activity
	Action   int     // steps, or strokes when swimming
	Duration float64 // hours
	Weight   float64 // kg

	Height     float64 // cm, walking only
	PoolLength float64 // m, swimming only
	LapCount   int     // swimming only
}

// NewReading assigns positional values to reading fields in the order
// (action, duration, weight[, extra...]).
func NewReading(activity Activity, values []float64) (Reading, error) {
	want := activity.arity()
	if want == 0 {
		return Reading{}, fmt.Errorf("%w: %q", ErrUnknownActivity, string(activity))
	}
	if len(values) != want {
		return Reading{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrArgumentCount, activity, want, len(values))
	}

	r := Reading{
		Activity: activity,
		Action:   int(values[0]),
		Duration: values[1],
		Weight:   values[2],
	}
	switch activity {
	case ActivityWalking:
		r.Height = values[3]
	case ActivitySwimming:
		r.PoolLength = values[3]
		r.LapCount = int(values[4])
	}
	return r, nil
}
