package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"flyweight-registry/internal/metrics"
	"flyweight-registry/pkg/logging/logging"
)

// LoggingCatalog wraps a Catalog with logging + metrics.
type LoggingCatalog struct {
	inner Catalog
}

// NewLoggingCatalog returns a catalog that logs every call and counts
// failures.
func NewLoggingCatalog(inner Catalog) Catalog {
	return &LoggingCatalog{inner: inner}
}

func (c *LoggingCatalog) Record(ctx context.Context, item Item) error {
	start := time.Now()
	err := c.inner.Record(ctx, item)

	c.log(ctx, "catalog_record", start, err,
		zap.String("key", item.Key),
		zap.String("model", item.Model),
		zap.String("brand", item.Brand),
		zap.String("engine_type", item.EngineType),
	)
	return err
}

func (c *LoggingCatalog) List(ctx context.Context) ([]Item, error) {
	start := time.Now()
	items, err := c.inner.List(ctx)

	c.log(ctx, "catalog_list", start, err, zap.Int("items", len(items)))
	return items, err
}

func (c *LoggingCatalog) Count(ctx context.Context) (int, error) {
	start := time.Now()
	n, err := c.inner.Count(ctx)

	c.log(ctx, "catalog_count", start, err, zap.Int("items", n))
	return n, err
}

func (c *LoggingCatalog) log(ctx context.Context, op string, start time.Time, err error, fields ...zap.Field) {
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0
	logger := logging.L(ctx)

	fields = append(fields, zap.Float64("latency_ms", latencyMs))
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues(op).Inc()
		logger.Error(op, append(fields, zap.Error(err))...)
		return
	}
	logger.Debug(op, fields...)
}
