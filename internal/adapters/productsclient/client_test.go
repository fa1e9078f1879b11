package productsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

const productID = domain.ID("33333333-3333-3333-3333-333333333333")

func newTestClient(baseURL string) port.ProductsClient {
	return NewClient(config.ProductsClientConfig{
		BaseURL: baseURL,
		Timeout: 500 * time.Millisecond,
	})
}

func productsStub(t *testing.T, status int, body *dto.ProductInfoDTO) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/v1/products/"+string(productID) {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("decodes the lookup shape", func(t *testing.T) {
		server := productsStub(t, http.StatusOK, &dto.ProductInfoDTO{
			ID:    string(productID),
			Name:  "Paracetamol 500mg",
			Price: 10.50,
			Stock: 42,
			Type:  "Analgesico",
		})
		defer server.Close()

		info, err := newTestClient(server.URL).GetProduct(context.Background(), productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if int64(info.Price) != 1050 {
			t.Fatalf("expected price 1050 cents, got %d", info.Price)
		}
		if info.Stock != 42 {
			t.Fatalf("expected stock 42, got %d", info.Stock)
		}
		if info.Type != "Analgesico" {
			t.Fatalf("expected type name, got %q", info.Type)
		}
	})

	t.Run("404 reads as not found", func(t *testing.T) {
		server := productsStub(t, http.StatusNotFound, nil)
		defer server.Close()

		_, err := newTestClient(server.URL).GetProduct(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("server error reads as not found", func(t *testing.T) {
		server := productsStub(t, http.StatusInternalServerError, nil)
		defer server.Close()

		_, err := newTestClient(server.URL).GetProduct(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("unreachable service reads as not found", func(t *testing.T) {
		server := productsStub(t, http.StatusOK, nil)
		server.Close()

		_, err := newTestClient(server.URL).GetProduct(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("malformed body reads as not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetProduct(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestClient_ValidateProductsAndStock(t *testing.T) {
	t.Run("maps existence and stock per distinct id", func(t *testing.T) {
		server := productsStub(t, http.StatusOK, &dto.ProductInfoDTO{
			ID:    string(productID),
			Name:  "Paracetamol 500mg",
			Price: 10.50,
			Stock: 3,
			Type:  "Analgesico",
		})
		defer server.Close()

		results, err := newTestClient(server.URL).ValidateProductsAndStock(context.Background(), []port.ItemRequest{
			{ProductID: productID, Quantity: 5},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		validation := results[productID]
		if !validation.Exists {
			t.Fatal("expected product to exist")
		}
		if validation.StockOK {
			t.Fatal("expected stock check to fail for 5 of 3")
		}
		if validation.Available != 3 || validation.Requested != 5 {
			t.Fatalf("unexpected counts %+v", validation)
		}
		if validation.Product == nil || int64(validation.Product.Price) != 1050 {
			t.Fatalf("expected product info with price, got %+v", validation.Product)
		}
	})

	t.Run("lookup failure yields Exists=false, not an error", func(t *testing.T) {
		server := productsStub(t, http.StatusOK, nil)
		server.Close()

		results, err := newTestClient(server.URL).ValidateProductsAndStock(context.Background(), []port.ItemRequest{
			{ProductID: productID, Quantity: 2},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		validation := results[productID]
		if validation.Exists {
			t.Fatal("expected Exists=false for unreachable product")
		}
		if validation.Requested != 2 {
			t.Fatalf("expected requested quantity carried, got %d", validation.Requested)
		}
	})
}
