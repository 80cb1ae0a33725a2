package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopfront/checkoutlambda/lib/myerrors"
)

// ErrItemsNotArray is returned when the payload's items field is missing,
// null or not a JSON array. Its text is part of the external contract.
var ErrItemsNotArray = errors.New("Invalid payload: items must be an array")

type PurchaseItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type checkoutRequest struct {
	Items json.RawMessage `json:"items"`
}

type sessionResponse struct {
	URL string `json:"url"`
}

// parsePurchaseItems decodes a request body into purchase items. The
// error taxonomy matters to callers:
//   - a missing/null/non-array items field yields ErrItemsNotArray,
//   - a malformed body or mistyped element yields an internal error,
//   - a negative price yields an invalid-input error.
func parsePurchaseItems(body string) ([]PurchaseItem, error) {
	if body == "" {
		body = "{}"
	}

	request := checkoutRequest{}
	err := json.Unmarshal([]byte(body), &request)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing request body: %s", err))
	}

	rawItems := bytes.TrimSpace(request.Items)
	if len(rawItems) == 0 || rawItems[0] != '[' {
		return nil, ErrItemsNotArray
	}

	items := []PurchaseItem{}
	err = json.Unmarshal(rawItems, &items)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing items: %s", err))
	}

	for _, item := range items {
		if item.Price < 0 {
			return nil, myerrors.NewInvalidInputErrorf("invalid price %d for item %q: must not be negative", item.Price, item.Name)
		}
	}

	return items, nil
}
