package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNotifyPurchaseRequest(t *testing.T) {
	var gotPath, gotKey string
	var gotPayload PurchaseRequestPayload

	hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("gövde parse edilemedi: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer hub.Close()

	client := NewClient(hub.URL, "hub-key")
	warehouseID := uuid.New()
	productID := uuid.New()

	err := client.NotifyPurchaseRequest(PurchaseRequestPayload{
		Reference:   "PR123456789",
		WarehouseID: warehouseID,
		Status:      "PENDING",
		Items:       []ItemPayload{{ProductID: productID, Quantity: 4}},
	})
	if err != nil {
		t.Fatalf("bildirim başarısız: %v", err)
	}

	if gotPath != "/notifications/purchase-request" {
		t.Errorf("path = %s", gotPath)
	}
	if gotKey != "hub-key" {
		t.Errorf("x-api-key = %s", gotKey)
	}
	if gotPayload.Reference != "PR123456789" || gotPayload.Status != "PENDING" {
		t.Errorf("payload yanlış: %+v", gotPayload)
	}
	if len(gotPayload.Items) != 1 || gotPayload.Items[0].Quantity != 4 {
		t.Errorf("items yanlış: %+v", gotPayload.Items)
	}
	if gotPayload.Timestamp == "" {
		t.Error("timestamp boş")
	}
}

func TestNotifyNon2xxFails(t *testing.T) {
	hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer hub.Close()

	client := NewClient(hub.URL, "hub-key")
	err := client.NotifyPurchaseRequest(PurchaseRequestPayload{Reference: "PR000000001"})
	if err == nil {
		t.Fatal("502 yanıtı hata döndürmeliydi")
	}
}

func TestNotifyNoBaseURL(t *testing.T) {
	client := NewClient("", "hub-key")
	if err := client.NotifyPurchaseRequest(PurchaseRequestPayload{}); err == nil {
		t.Fatal("boş baseURL hata döndürmeliydi")
	}
}
