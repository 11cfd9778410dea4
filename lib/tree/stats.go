package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TreeStatsName = "xboot/xtree"
)

type treeStats struct {
	kind          attribute.KeyValue
	insertCount   metric.Int64Counter
	removeCount   metric.Int64Counter
	rotationCount metric.Int64Counter
	fixupCount    metric.Int64Counter
	size          metric.Int64UpDownCounter
}

func (stats *treeStats) IncreaseInsertCount() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1, metric.WithAttributes(stats.kind))
	stats.size.Add(context.Background(), 1, metric.WithAttributes(stats.kind))
}

func (stats *treeStats) IncreaseRemoveCount() {
	if stats == nil {
		return
	}
	stats.removeCount.Add(context.Background(), 1, metric.WithAttributes(stats.kind))
	stats.size.Add(context.Background(), -1, metric.WithAttributes(stats.kind))
}

func (stats *treeStats) IncreaseRotationCount(dir Direction) {
	if stats == nil {
		return
	}
	stats.rotationCount.Add(context.Background(), 1, metric.WithAttributes(
		stats.kind,
		attribute.String("xtree.rotation.direction", dir.String()),
	))
}

func (stats *treeStats) IncreaseFixupCount(caseName string) {
	if stats == nil {
		return
	}
	stats.fixupCount.Add(context.Background(), 1, metric.WithAttributes(
		stats.kind,
		attribute.String("xtree.fixup.case", caseName),
	))
}

func (stats *treeStats) RecordSize(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.size.Add(context.Background(), delta, metric.WithAttributes(stats.kind))
}

func newTreeStats(name, kind string, provider metric.MeterProvider) *treeStats {
	if len(strings.TrimSpace(name)) == 0 {
		name = "default"
	}
	meter := provider.Meter(fmt.Sprintf("%s/%s", TreeStatsName, name))
	return &treeStats{
		kind: attribute.String("xtree.kind", kind),
		insertCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.insert.count",
			metric.WithDescription("The number of keys inserted into the tree."),
		)),
		removeCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.remove.count",
			metric.WithDescription("The number of keys removed from the tree."),
		)),
		rotationCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.rotation.count",
			metric.WithDescription("The number of rotations applied by the balancer."),
		)),
		fixupCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.fixup.count",
			metric.WithDescription("The number of rebalance cases entered."),
		)),
		size: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xtree.size",
			metric.WithDescription("The number of keys held by the tree."),
		)),
	}
}
