package metrics

import (
	"net/http"
	"ocppcore/internal/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func Listen(conf *config.Config, logger *zap.Logger) error {
	if !conf.Metrics.Enabled {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	address := conf.Metrics.BindIP + ":" + conf.Metrics.Port
	logger.Info("starting metrics server", zap.String("address", address))
	return http.ListenAndServe(address, mux)
}
