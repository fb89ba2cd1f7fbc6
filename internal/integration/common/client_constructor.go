package common

import (
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	pkghttp "github.com/Suruthi-CS/Tech-Surf-ChatBot/pkg/http"
	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// NewBaseConnector builds the shared HTTP connector used by every
// integration: timeouts from config, request logging, optional bearer auth
// and optional retry of transient failures.
func NewBaseConnector(cfg config.HTTPClientConfig, retryOpts []retry.Option, logger *zap.Logger, extraOpts ...pkghttp.HttpOpts) *pkghttp.Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:       logger,
		BaseURL:      cfg.Url,
		RetryOptions: retryOpts,
	}

	opts := []pkghttp.HttpOpts{
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAuthToken(cfg.Token),
	}
	opts = append(opts, extraOpts...)

	return pkghttp.NewConnector(connCfg, opts...)
}
