package contentstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/common"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	pkghttp "github.com/Suruthi-CS/Tech-Surf-ChatBot/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Reads and writes go to different hosts: the delivery CDN serves entries,
// the management API accepts them. CONTENT_STORE_SERVICE_URL and
// CONTENT_STORE_MANAGEMENT_URL override the respective region mapping.
var regionDeliveryURLs = map[string]string{
	"us":       "https://cdn.contentstack.io",
	"eu":       "https://eu-cdn.contentstack.com",
	"azure-na": "https://azure-na-cdn.contentstack.com",
	"azure-eu": "https://azure-eu-cdn.contentstack.com",
}

var regionManagementURLs = map[string]string{
	"us":       "https://api.contentstack.io",
	"eu":       "https://eu-api.contentstack.com",
	"azure-na": "https://azure-na-api.contentstack.com",
	"azure-eu": "https://azure-eu-api.contentstack.com",
}

// FetchError wraps a failed candidate fetch, carrying the upstream message.
type FetchError struct {
	ContentType string
	Err         error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch entries for content type %q: %v", e.ContentType, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Connector talks to the external content store. The delivery side feeds the
// search engine with candidate entries; the management side is used by the
// bulk import pipeline.
type Connector struct {
	config     config.ContentStoreConfig
	delivery   *pkghttp.Connector
	management *pkghttp.Connector
	logger     *zap.Logger
}

func NewConnector(
	cfg config.ContentStoreConfig,
	logger *zap.Logger,
) *Connector {
	deliveryCfg := cfg.HTTPClientConfig
	if deliveryCfg.Url == "" {
		deliveryCfg.Url = regionDeliveryURLs[cfg.Region]
	}

	managementCfg := cfg.HTTPClientConfig
	managementCfg.Url = cfg.ManagementURL
	if managementCfg.Url == "" {
		managementCfg.Url = regionManagementURLs[cfg.Region]
	}

	// The store authenticates with key/token headers, not a bearer token.
	// The delivery token is only valid on the CDN, the management token only
	// on the management host.
	deliveryHeaders := pkghttp.WithStaticHeaders(map[string]string{
		"api_key":      cfg.APIKey,
		"access_token": cfg.DeliveryToken,
	})
	managementHeaders := pkghttp.WithStaticHeaders(map[string]string{
		"api_key":       cfg.APIKey,
		"authorization": cfg.ManagementToken,
	})

	return &Connector{
		delivery:   common.NewBaseConnector(deliveryCfg, cfg.Retry.ToRetryOptions(), logger, deliveryHeaders),
		management: common.NewBaseConnector(managementCfg, cfg.Retry.ToRetryOptions(), logger, managementHeaders),
		config:     cfg,
		logger:     logger,
	}
}

type entriesResponse struct {
	Entries []search.Entry `json:"entries"`
}

// FetchEntries pulls up to limit entries of a content type from the delivery
// API. Entries come back schemaless and are handed to the search engine
// untouched.
func (c *Connector) FetchEntries(ctx context.Context, contentType string, limit int) ([]search.Entry, error) {
	endpoint := fmt.Sprintf("/v3/content_types/%s/entries?environment=%s&limit=%d",
		contentType, c.config.Environment, limit)

	ctxzap.Debug(ctx, "fetching entries from content store",
		zap.String("content_type", contentType),
		zap.Int("limit", limit),
	)

	var resp entriesResponse
	if err := c.delivery.DoRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, &FetchError{ContentType: contentType, Err: err}
	}

	ctxzap.Debug(ctx, "entries fetched",
		zap.String("content_type", contentType),
		zap.Int("count", len(resp.Entries)),
	)

	return resp.Entries, nil
}

type createEntryRequest struct {
	Entry map[string]any `json:"entry"`
}

type createEntryResponse struct {
	Entry struct {
		UID string `json:"uid"`
	} `json:"entry"`
}

// CreateEntry creates a single entry of a content type through the management
// API and returns the new entry UID.
func (c *Connector) CreateEntry(ctx context.Context, contentType string, fields map[string]any) (string, error) {
	endpoint := fmt.Sprintf("/v3/content_types/%s/entries", contentType)

	var resp createEntryResponse
	err := c.management.DoRequest(ctx, http.MethodPost, endpoint, createEntryRequest{Entry: fields}, &resp)
	if err != nil {
		ctxzap.Error(ctx, "failed to create entry",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return "", fmt.Errorf("create entry: %w", err)
	}

	ctxzap.Info(ctx, "entry created",
		zap.String("content_type", contentType),
		zap.String("uid", resp.Entry.UID),
	)

	return resp.Entry.UID, nil
}
