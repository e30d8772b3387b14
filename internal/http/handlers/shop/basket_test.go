package shop

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abbosbek-cloud/e-commerse/internal/provider"
	"github.com/Abbosbek-cloud/e-commerse/internal/store"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	h := New(&provider.Container{Store: st})

	r := gin.New()
	r.GET("/api/v1/shop/basket", h.GetBasket)
	r.POST("/api/v1/shop/basket/items", h.AddBasketItem)
	r.POST("/api/v1/shop/basket/items/:item_id/increment", h.IncrementBasketItem)
	r.POST("/api/v1/shop/basket/items/:item_id/decrement", h.DecrementBasketItem)
	r.DELETE("/api/v1/shop/basket/items/:item_id", h.DeleteBasketItem)
	r.POST("/api/v1/shop/basket/toggle", h.ToggleBasket)
	return r, st
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) envelope {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: unexpected http status %d", method, path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return env
}

type basketData struct {
	Lines []struct {
		ItemID    string `json:"item_id"`
		Name      string `json:"name"`
		Price     string `json:"price"`
		Quantity  int    `json:"quantity"`
		LineTotal string `json:"line_total"`
	} `json:"lines"`
	Totals struct {
		Subtotal string `json:"subtotal"`
		Tax      string `json:"tax"`
		Total    string `json:"total"`
	} `json:"totals"`
	TotalQuantity int  `json:"total_quantity"`
	Visible       bool `json:"visible"`
}

func getBasket(t *testing.T, r *gin.Engine) basketData {
	t.Helper()
	env := doRequest(t, r, http.MethodGet, "/api/v1/shop/basket", "")
	if env.StatusCode != 0 {
		t.Fatalf("get basket: business code %d msg %q", env.StatusCode, env.Msg)
	}
	var data basketData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode basket data: %v", err)
	}
	return data
}

func TestBasketFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items",
		`{"item_id": "skin-1", "name": "Legendary Skin", "price": "20.00"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items",
		`{"item_id": "emote-1", "name": "Uncommon Emote", "price": "2.00"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items/skin-1/increment", "")

	data := getBasket(t, r)
	if len(data.Lines) != 2 {
		t.Fatalf("expected 2 basket lines, got %d", len(data.Lines))
	}
	if data.Lines[0].ItemID != "skin-1" || data.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", data.Lines[0])
	}
	if data.Lines[0].LineTotal != "40.00" {
		t.Fatalf("expected line total 40.00, got %q", data.Lines[0].LineTotal)
	}
	if data.TotalQuantity != 3 {
		t.Fatalf("expected total quantity 3, got %d", data.TotalQuantity)
	}
	if data.Totals.Subtotal != "42.00" || data.Totals.Tax != "4.20" || data.Totals.Total != "46.20" {
		t.Fatalf("unexpected totals: %+v", data.Totals)
	}
}

func TestDecrementRemovesLineAtOne(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items",
		`{"item_id": "emote-1", "name": "Uncommon Emote", "price": "2.00"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items/emote-1/decrement", "")

	data := getBasket(t, r)
	if len(data.Lines) != 0 {
		t.Fatalf("expected empty basket after decrement at quantity 1, got %d lines", len(data.Lines))
	}
}

func TestDeleteBasketItem(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items",
		`{"item_id": "skin-1", "name": "Legendary Skin", "price": "20.00"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items/skin-1/increment", "")
	doRequest(t, r, http.MethodDelete, "/api/v1/shop/basket/items/skin-1", "")

	data := getBasket(t, r)
	if len(data.Lines) != 0 {
		t.Fatalf("expected empty basket after delete, got %d lines", len(data.Lines))
	}
}

func TestAddBasketItemRejectsInvalidPayload(t *testing.T) {
	r, _ := newTestRouter(t)

	env := doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/items", `{"name": "missing id"}`)
	if env.StatusCode != 400 {
		t.Fatalf("expected business code 400, got %d", env.StatusCode)
	}

	data := getBasket(t, r)
	if len(data.Lines) != 0 {
		t.Fatalf("invalid payload must not touch basket, got %d lines", len(data.Lines))
	}
}

func TestToggleBasketVisibility(t *testing.T) {
	r, st := newTestRouter(t)

	env := doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/toggle", "")
	var data struct {
		BasketVisible bool `json:"basket_visible"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode toggle data: %v", err)
	}
	if !data.BasketVisible || !st.BasketVisible() {
		t.Fatalf("expected basket visible after toggle")
	}

	doRequest(t, r, http.MethodPost, "/api/v1/shop/basket/toggle", "")
	if st.BasketVisible() {
		t.Fatalf("expected basket hidden after second toggle")
	}
}
