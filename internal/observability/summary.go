package observability

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespacePrefix = "fitness_tracker_"

// LogRunSummary gathers the pipeline metrics from g and logs them as a single
// "run summary" entry at info level.
func LogRunSummary(ctx context.Context, logger *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "run summary", summaryAttrs(families)...)
}

// summaryAttrs flattens counters to their value, labelled counters to a group
// keyed by the first label, and histograms to their sample count and sum.
// Gauges are left out.
func summaryAttrs(families []*dto.MetricFamily) []slog.Attr {
	var attrs []slog.Attr
	for _, mf := range families {
		name := strings.TrimPrefix(mf.GetName(), namespacePrefix)
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			metrics := mf.GetMetric()
			if len(metrics) == 1 && len(metrics[0].GetLabel()) == 0 {
				attrs = append(attrs, slog.Float64(name, metrics[0].GetCounter().GetValue()))
				continue
			}
			var byLabel []any
			for _, m := range metrics {
				if labels := m.GetLabel(); len(labels) > 0 {
					byLabel = append(byLabel, slog.Float64(labels[0].GetValue(), m.GetCounter().GetValue()))
				}
			}
			attrs = append(attrs, slog.Group(name, byLabel...))
		case dto.MetricType_HISTOGRAM:
			for _, m := range mf.GetMetric() {
				h := m.GetHistogram()
				attrs = append(attrs,
					slog.Uint64(name+"_count", h.GetSampleCount()),
					slog.Float64(name+"_sum", h.GetSampleSum()),
				)
			}
		}
	}
	return attrs
}
