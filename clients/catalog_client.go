package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront-service/models"
)

// CatalogClient fetches the product list from a remote catalog backend.
// The storefront uses it at startup to replace the seeded catalog when
// CATALOG_SERVICE_URL is configured.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListProducts calls GET /products on the catalog backend.
func (c *CatalogClient) ListProducts() ([]models.Product, error) {
	url := fmt.Sprintf("%s/products", c.baseURL)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product list: %w", err)
	}
	return products, nil
}
