package catalog

import (
	"testing"

	"github.com/Abbosbek-cloud/e-commerse/internal/constants"

	"github.com/shopspring/decimal"
)

func TestNormalizeReturnsEmptyOnUnusableInput(t *testing.T) {
	inputs := map[string][]byte{
		"nil":             nil,
		"empty":           []byte(""),
		"null":            []byte(`null`),
		"not json":        []byte(`not json at all`),
		"empty object":    []byte(`{}`),
		"shop not a list": []byte(`{"shop": 42}`),
		"shop object":     []byte(`{"shop": {"mainId": "X"}}`),
	}
	for name, input := range inputs {
		items := Normalize(input)
		if items == nil {
			t.Fatalf("%s: expected empty slice, got nil", name)
		}
		if len(items) != 0 {
			t.Fatalf("%s: expected no items, got %d", name, len(items))
		}
	}
}

func TestNormalizeBodyReportsListShape(t *testing.T) {
	items, ok := NormalizeBody([]byte(`{"shop": []}`))
	if !ok {
		t.Fatalf("empty shop list is a valid shape")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items from empty shop list, got %d", len(items))
	}

	invalid := map[string][]byte{
		"nil":             nil,
		"not json":        []byte(`not json at all`),
		"empty object":    []byte(`{}`),
		"shop null":       []byte(`{"shop": null}`),
		"shop not a list": []byte(`{"shop": 42}`),
	}
	for name, input := range invalid {
		if _, ok := NormalizeBody(input); ok {
			t.Fatalf("%s: shape must be rejected", name)
		}
	}
}

func TestNormalizeDefaultsForMissingFields(t *testing.T) {
	items := Normalize([]byte(`{"shop": [{"mainId": "Bare_Item"}]}`))
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	item := items[0]
	if item.ID != "Bare_Item" {
		t.Fatalf("unexpected id: %s", item.ID)
	}
	if item.Description != constants.DefaultDescription {
		t.Fatalf("unexpected description: %s", item.Description)
	}
	if !item.Price.IsZero() {
		t.Fatalf("expected zero price, got %s", item.Price)
	}
	if !item.RegularPrice.Equal(item.Price.Decimal) {
		t.Fatalf("expected regular price to equal price, got %s vs %s", item.RegularPrice, item.Price)
	}
	if item.BackgroundImageURL != "" {
		t.Fatalf("expected empty background url, got %s", item.BackgroundImageURL)
	}
	if item.Rarity != constants.DefaultRarity {
		t.Fatalf("expected default rarity, got %s", item.Rarity)
	}
	if item.Series != nil || item.FirstReleaseDate != nil || item.OfferWindow != nil ||
		item.Giftable != nil || item.Purchasable != nil {
		t.Fatalf("expected optional fields to stay nil")
	}
}

func TestNormalizeDescriptionPrecedence(t *testing.T) {
	items := Normalize([]byte(`{"shop": [
		{"mainId": "A", "displayDescription": "primary", "offerTag": {"text": "tag"}},
		{"mainId": "B", "offerTag": {"text": "tag only"}},
		{"mainId": "C", "offerTag": {"text": ""}}
	]}`))
	if len(items) != 3 {
		t.Fatalf("expected three items, got %d", len(items))
	}
	if items[0].Description != "primary" {
		t.Fatalf("displayDescription should win, got %s", items[0].Description)
	}
	if items[1].Description != "tag only" {
		t.Fatalf("offerTag text should be used, got %s", items[1].Description)
	}
	if items[2].Description != constants.DefaultDescription {
		t.Fatalf("empty offerTag text should fall to default, got %s", items[2].Description)
	}
}

func TestNormalizeRegularPriceFallsBackToFinal(t *testing.T) {
	items := Normalize([]byte(`{"shop": [
		{"mainId": "A", "price": {"finalPrice": 800}},
		{"mainId": "B", "price": {"regularPrice": 0, "finalPrice": 100}}
	]}`))
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	for _, item := range items {
		if !item.RegularPrice.Equal(item.Price.Decimal) {
			t.Fatalf("%s: expected regular price %s to equal price %s", item.ID, item.RegularPrice, item.Price)
		}
		if item.IsDiscounted() {
			t.Fatalf("%s: item without real regular price must not be discounted", item.ID)
		}
	}
	if !items[0].Price.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("unexpected price: %s", items[0].Price)
	}
}

func TestNormalizeDiscountInvariant(t *testing.T) {
	items := Normalize([]byte(`{"shop": [
		{"mainId": "Sale", "price": {"regularPrice": 500, "finalPrice": 400}},
		{"mainId": "Full", "price": {"regularPrice": 2000, "finalPrice": 2000}},
		{"mainId": "None", "price": {"finalPrice": 300}}
	]}`))
	for _, item := range items {
		if item.IsDiscounted() && !item.RegularPrice.GreaterThan(item.Price.Decimal) {
			t.Fatalf("%s: discounted item must have regular price above price", item.ID)
		}
	}
	if !items[0].IsDiscounted() {
		t.Fatalf("expected Sale to be discounted")
	}
	if items[1].IsDiscounted() || items[2].IsDiscounted() {
		t.Fatalf("items without real markdown must not be discounted")
	}
}

func TestNormalizeRarityCanonicalized(t *testing.T) {
	items := Normalize([]byte(`{"shop": [
		{"mainId": "A", "rarity": {"name": "rare"}},
		{"mainId": "B", "rarity": {"name": "Shiny"}},
		{"mainId": "C", "rarity": {"name": ""}}
	]}`))
	if items[0].Rarity != constants.RarityRare {
		t.Fatalf("expected RARE, got %s", items[0].Rarity)
	}
	if items[1].Rarity != constants.DefaultRarity {
		t.Fatalf("unrecognized rarity should fall to default, got %s", items[1].Rarity)
	}
	if items[2].Rarity != constants.DefaultRarity {
		t.Fatalf("empty rarity should fall to default, got %s", items[2].Rarity)
	}
}

func TestNormalizePassThroughFields(t *testing.T) {
	items := Normalize([]byte(`{"shop": [{
		"mainId": "Full_Item",
		"displayName": "Full Item",
		"displayType": "Outfit",
		"series": {"name": "Shadow Series"},
		"firstReleaseDate": "2024-03-01",
		"offerDates": {"in": "2024-03-01T00:00:00Z", "out": "2024-03-08T00:00:00Z"},
		"giftAllowed": true,
		"buyAllowed": false,
		"displayAssets": [{"full_background": "https://img.example/bg.png"}, {"full_background": "ignored"}]
	}]}`))
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	item := items[0]
	if item.Type != "Outfit" {
		t.Fatalf("unexpected type: %s", item.Type)
	}
	if item.Series == nil || *item.Series != "Shadow Series" {
		t.Fatalf("unexpected series: %v", item.Series)
	}
	if item.FirstReleaseDate == nil || *item.FirstReleaseDate != "2024-03-01" {
		t.Fatalf("unexpected first release date: %v", item.FirstReleaseDate)
	}
	if item.OfferWindow == nil || item.OfferWindow.StartDate != "2024-03-01T00:00:00Z" || item.OfferWindow.EndDate != "2024-03-08T00:00:00Z" {
		t.Fatalf("unexpected offer window: %+v", item.OfferWindow)
	}
	if item.Giftable == nil || !*item.Giftable {
		t.Fatalf("expected giftable true")
	}
	if item.Purchasable == nil || *item.Purchasable {
		t.Fatalf("expected purchasable false")
	}
	if item.BackgroundImageURL != "https://img.example/bg.png" {
		t.Fatalf("expected first display asset background, got %s", item.BackgroundImageURL)
	}
}

func TestNormalizeSkipsUndecodableEntries(t *testing.T) {
	items := Normalize([]byte(`{"shop": [{"mainId": "Good"}, 42, "junk"]}`))
	if len(items) != 1 {
		t.Fatalf("expected only decodable entry to survive, got %d", len(items))
	}
	if items[0].ID != "Good" {
		t.Fatalf("unexpected surviving item: %s", items[0].ID)
	}
}

func TestFallbackItemsNonEmptyAndNormalized(t *testing.T) {
	items := FallbackItems()
	if len(items) == 0 {
		t.Fatalf("fallback dataset must not be empty")
	}
	for _, item := range items {
		if item.ID == "" {
			t.Fatalf("fallback item without id")
		}
		if item.Description == "" {
			t.Fatalf("%s: fallback item without description", item.ID)
		}
		if item.IsDiscounted() && !item.RegularPrice.GreaterThan(item.Price.Decimal) {
			t.Fatalf("%s: discount invariant violated", item.ID)
		}
	}
	first := items[0]
	if first.ID != "Wheel_Precision_Bundle" {
		t.Fatalf("unexpected first fallback item: %s", first.ID)
	}
	if !first.IsDiscounted() {
		t.Fatalf("expected first fallback item to be discounted")
	}
	if !first.RegularPrice.Equal(decimal.NewFromInt(500)) || !first.Price.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected fallback prices: %s / %s", first.RegularPrice, first.Price)
	}
}
