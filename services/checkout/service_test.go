package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shopfront/checkoutlambda/lib/mytime"
)

func TestBuildLineItems(t *testing.T) {
	testCases := []struct {
		name         string
		in           PurchaseItem
		wantQuantity int64
	}{
		{
			name:         "Omitted quantity defaults to one",
			in:           PurchaseItem{Name: "Widget", Price: 499},
			wantQuantity: 1,
		},
		{
			// Regression: an explicit zero is treated as unspecified,
			// not preserved.
			name:         "Zero quantity is coerced to one",
			in:           PurchaseItem{Name: "Widget", Price: 499, Quantity: 0},
			wantQuantity: 1,
		},
		{
			name:         "Positive quantity is kept",
			in:           PurchaseItem{Name: "Widget", Price: 499, Quantity: 3},
			wantQuantity: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lineItems := buildLineItems([]PurchaseItem{tc.in})

			assert.Len(t, lineItems, 1)
			assert.Equal(t, tc.wantQuantity, *lineItems[0].Quantity)
			assert.Equal(t, "Widget", *lineItems[0].PriceData.ProductData.Name)
			assert.Equal(t, int64(499), *lineItems[0].PriceData.UnitAmount)
			assert.Equal(t, "usd", *lineItems[0].PriceData.Currency)
		})
	}

	t.Run("Count and order are preserved", func(t *testing.T) {
		lineItems := buildLineItems([]PurchaseItem{
			{Name: "Tennis shoes", Price: 12000},
			{Name: "Tennis racket", Price: 23000},
			{Name: "Tennis balls", Price: 1000, Quantity: 3},
		})

		assert.Len(t, lineItems, 3)
		assert.Equal(t, "Tennis shoes", *lineItems[0].PriceData.ProductData.Name)
		assert.Equal(t, "Tennis racket", *lineItems[1].PriceData.ProductData.Name)
		assert.Equal(t, "Tennis balls", *lineItems[2].PriceData.ProductData.Name)
	})

	t.Run("No items yields an empty list", func(t *testing.T) {
		lineItems := buildLineItems([]PurchaseItem{})

		assert.NotNil(t, lineItems)
		assert.Empty(t, lineItems)
	})
}

func TestSessionParams(t *testing.T) {

	t.Run("Configured redirect urls are used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payer := NewMockPayer(ctrl)
		payer.EXPECT().UseAPIKey("my_api_key")

		sut := newService(Config{
			APIKey:     "my_api_key",
			SuccessURL: "https://shop.example/thanks",
			CancelURL:  "https://shop.example/basket",
		}, payer, mytime.RealNower{}, &recordingLogger{})

		params := sut.sessionParams(nil)

		assert.Equal(t, "https://shop.example/thanks", *params.SuccessURL)
		assert.Equal(t, "https://shop.example/basket", *params.CancelURL)
	})

	t.Run("Absent redirect urls fall back to placeholders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payer := NewMockPayer(ctrl)
		payer.EXPECT().UseAPIKey("")

		sut := newService(Config{}, payer, mytime.RealNower{}, &recordingLogger{})

		params := sut.sessionParams(nil)

		assert.Equal(t, "https://example.com/success", *params.SuccessURL)
		assert.Equal(t, "https://example.com/cancel", *params.CancelURL)
	})
}
