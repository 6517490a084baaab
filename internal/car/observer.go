package car

import (
	"go.uber.org/zap"

	"flyweight-registry/internal/flyweight"
	"flyweight-registry/internal/metrics"
)

// NewLoggingObserver returns an observer that logs every acquire outcome and
// records it in the flyweight metrics.
func NewLoggingObserver(logger *zap.Logger) flyweight.Observer[Key] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("flyweight")

	return flyweight.ObserverFunc[Key](func(k Key, created bool) {
		fields := []zap.Field{
			zap.String("key", k.String()),
			zap.String("model", k.Model),
			zap.String("brand", k.Brand),
			zap.String("engine_type", k.EngineType),
		}

		if created {
			metrics.FlyweightAcquireTotal.WithLabelValues(metrics.ResultMiss).Inc()
			logger.Info("creating new car flyweight", fields...)
			return
		}

		metrics.FlyweightAcquireTotal.WithLabelValues(metrics.ResultHit).Inc()
		logger.Info("reusing existing car flyweight", fields...)
	})
}
