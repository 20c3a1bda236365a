package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client: hub.foomid.id'ye giden bildirim istemcisi. Timeout sabit 10 sn;
// bildirim best-effort olduğu için çağıranlar hatayı loglayıp yutar, talebin
// kendi durumu asla bu çağrıya bağlı değildir.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type PurchaseRequestPayload struct {
	Reference   string        `json:"reference"`
	WarehouseID uuid.UUID     `json:"warehouse_id"`
	Status      string        `json:"status"`
	Items       []ItemPayload `json:"items"`
	Timestamp   string        `json:"timestamp"`
}

type ItemPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// NotifyPurchaseRequest: PENDING'e geçen talebi hub'a bildirir.
func (c *Client) NotifyPurchaseRequest(payload PurchaseRequestPayload) error {
	if c.baseURL == "" {
		return fmt.Errorf("hub URL tanımlı değil")
	}

	payload.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("bildirim gövdesi oluşturulamadı: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/notifications/purchase-request", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("bildirim isteği oluşturulamadı: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bildirim isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("hub %d döndürdü", resp.StatusCode)
	}
	return nil
}
