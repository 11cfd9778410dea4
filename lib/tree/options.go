package tree

import (
	"reflect"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/xlog"
)

type treeConfig[K any, V any] struct {
	cmp            infra.KeyComparator[K]
	valEqual       func(v1, v2 V) bool
	logger         xlog.XLogger
	stats          *treeStats
	meterProvider  metric.MeterProvider
	statsName      string
	isStatsEnabled bool
	isDesc         bool
	isRmBorrowPred bool
	isValReplace   bool
}

func newTreeConfig[K any, V any](
	name string,
	cmp infra.KeyComparator[K],
	opts ...TreeOption[K, V],
) *treeConfig[K, V] {
	if cmp == nil {
		panic( /* debug assertion */ "[tree] nil key comparator")
	}

	cfg := &treeConfig[K, V]{
		cmp: cmp,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}

	if cfg.isDesc {
		cfg.cmp = infra.ReverseKeyComparator[K](cfg.cmp)
	}
	if cfg.valEqual == nil {
		cfg.valEqual = func(v1, v2 V) bool {
			return reflect.DeepEqual(v1, v2)
		}
	}
	if cfg.logger != nil {
		cfg.logger = cfg.logger.Named(strings.ToLower(name))
	}
	if cfg.isStatsEnabled {
		if cfg.meterProvider == nil {
			cfg.meterProvider = otel.GetMeterProvider()
		}
		cfg.stats = newTreeStats(cfg.statsName, name, cfg.meterProvider)
	}
	return cfg
}

type TreeOption[K any, V any] func(*treeConfig[K, V])

// WithTreeDesc sorts keys from the greatest to the least.
func WithTreeDesc[K any, V any]() TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.isDesc = true
	}
}

// WithTreeRemoveBorrowPred moves the in-order predecessor into
// a removed node with two children. The successor by default.
func WithTreeRemoveBorrowPred[K any, V any]() TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.isRmBorrowPred = true
	}
}

// WithTreeValReplace makes Insert overwrite the value of an
// existing key instead of failing with ErrDuplicateKey.
func WithTreeValReplace[K any, V any]() TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.isValReplace = true
	}
}

func WithTreeValEqual[K any, V any](fn func(v1, v2 V) bool) TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.valEqual = fn
	}
}

func WithTreeLogger[K any, V any](logger xlog.XLogger) TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.logger = logger
	}
}

// WithTreeStats records the tree operations by OpenTelemetry.
// The global meter provider is used if provider is absent.
func WithTreeStats[K any, V any](name string, provider ...metric.MeterProvider) TreeOption[K, V] {
	return func(cfg *treeConfig[K, V]) {
		cfg.isStatsEnabled = true
		cfg.statsName = name
		if len(provider) > 0 && provider[0] != nil {
			cfg.meterProvider = provider[0]
		}
	}
}
