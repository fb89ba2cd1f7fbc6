package contentstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	pkgretry "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(deliveryURL, managementURL string) config.ContentStoreConfig {
	return config.ContentStoreConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             30 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   deliveryURL,
		},
		APIKey:          "api-key",
		DeliveryToken:   "delivery-token",
		ManagementToken: "management-token",
		ManagementURL:   managementURL,
		Environment:     "production",
		Region:          "us",
		FetchLimit:      100,
		Retry:           *pkgretry.DefaultRetryConfig(),
	}
}

func TestFetchEntriesUsesDeliveryHost(t *testing.T) {
	delivery := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/content_types/tour/entries", r.URL.Path)
		assert.Equal(t, "production", r.URL.Query().Get("environment"))
		assert.Equal(t, "api-key", r.Header.Get("api_key"))
		assert.Equal(t, "delivery-token", r.Header.Get("access_token"))
		assert.Empty(t, r.Header.Get("authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"entries": []map[string]any{{"title": "Paris Getaway"}},
		})
	}))
	defer delivery.Close()

	management := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("read went to the management host")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer management.Close()

	conn := NewConnector(testConfig(delivery.URL, management.URL), zap.NewNop())

	entries, err := conn.FetchEntries(context.Background(), "tour", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Paris Getaway", entries[0].Title())
}

func TestCreateEntryUsesManagementHost(t *testing.T) {
	delivery := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("write went to the delivery CDN")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer delivery.Close()

	management := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/content_types/tour/entries", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("api_key"))
		assert.Equal(t, "management-token", r.Header.Get("authorization"))
		assert.Empty(t, r.Header.Get("access_token"))

		var req createEntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Louvre Tour", req.Entry["title"])

		json.NewEncoder(w).Encode(map[string]any{
			"entry": map[string]any{"uid": "entry-1"},
		})
	}))
	defer management.Close()

	conn := NewConnector(testConfig(delivery.URL, management.URL), zap.NewNop())

	uid, err := conn.CreateEntry(context.Background(), "tour", map[string]any{"title": "Louvre Tour"})
	require.NoError(t, err)
	assert.Equal(t, "entry-1", uid)
}

func TestRegionHostPairs(t *testing.T) {
	require.Len(t, regionManagementURLs, len(regionDeliveryURLs))
	for region := range regionDeliveryURLs {
		assert.Contains(t, regionManagementURLs, region)
		assert.NotEqual(t, regionDeliveryURLs[region], regionManagementURLs[region])
	}
}
