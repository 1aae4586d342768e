// Package sample serves a fixed, ordered list of sensor packages.
package sample

import (
	"context"
	"fmt"

	"github.com/couchcryptid/fitness-tracker/internal/domain"
)

// Packages returns the built-in demo workouts: a swim, a run and a walk.
func Packages() []domain.Package {
	return []domain.Package{
		{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Values: []float64{15000, 1, 75}},
		{Code: "WLK", Values: []float64{9000, 1, 75, 180}},
	}
}

// Source hands out packages in input order.
// It implements pipeline.BatchExtractor and is not safe for concurrent use.
type Source struct {
	packages []domain.Package
	next     int
}

// NewSource creates a Source over the given packages.
func NewSource(packages []domain.Package) *Source {
	return &Source{packages: packages}
}

// ExtractBatch returns up to batchSize packages that have not been handed out
// yet. It returns an empty batch once the list is exhausted.
func (s *Source) ExtractBatch(ctx context.Context, batchSize int) ([]domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	end := min(s.next+batchSize, len(s.packages))
	batch := make([]domain.Package, end-s.next)
	copy(batch, s.packages[s.next:end])
	s.next = end
	return batch, nil
}
