package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/fitness-tracker/internal/domain"
)

// TrackerTransformer implements Transformer using the domain calculator.
type TrackerTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a TrackerTransformer.
func NewTransformer(logger *slog.Logger) *TrackerTransformer {
	return &TrackerTransformer{logger: logger}
}

func (t *TrackerTransformer) Transform(_ context.Context, pkg domain.Package) (domain.Measurement, error) {
	m, err := domain.ReadPackage(pkg)
	if err != nil {
		return domain.Measurement{}, err
	}

	t.logger.Debug("package computed",
		"reading_id", pkg.ID(),
		"activity", m.Label,
		"distance_km", m.Distance,
		"speed_kmh", m.Speed,
		"calories_kcal", m.Calories,
	)
	return m, nil
}
