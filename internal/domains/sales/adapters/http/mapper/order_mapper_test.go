package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	salesdomain "github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
)

func sampleView() *salestypes.OrderView {
	return &salestypes.OrderView{
		Order: &salesdomain.Order{
			ID:         1,
			CashierID:  1,
			PaidOnDate: time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
			Items: []salesdomain.LineItem{
				{ID: 1, OrderID: 1, ProductID: 2, Quantity: 2},
			},
		},
		Cashier: salestypes.CashierSummary{ID: 1, FirstName: "Ava", LastName: "Dominie"},
		Lines: []salestypes.LineView{
			{
				Item: salesdomain.LineItem{ID: 1, OrderID: 1, ProductID: 2, Quantity: 2},
				Product: &salestypes.ProductDetail{
					ID:           2,
					Name:         "Pizza Hot Pocket",
					Price:        decimal.RequireFromString("2.75"),
					Brand:        "Hot Pockets",
					CategoryID:   1,
					CategoryName: "Food",
				},
			},
		},
	}
}

func TestFromOrderView_ComputesTotalAndNesting(t *testing.T) {
	order := FromOrderView(sampleView())

	require.Equal(t, int64(1), order.ID)
	require.Equal(t, "Ava Dominie", order.Cashier.FullName)
	require.True(t, order.Total.Equal(decimal.RequireFromString("5.50")))
	require.Len(t, order.OrderProducts, 1)

	line := order.OrderProducts[0]
	require.Equal(t, int64(2), line.ProductID)
	require.NotNil(t, line.Product)
	require.Equal(t, "Pizza Hot Pocket", line.Product.Name)
	require.NotNil(t, line.Product.Category)
	require.Equal(t, "Food", line.Product.Category.Name)
}

func TestFromOrderView_OmitsMissingProduct(t *testing.T) {
	view := sampleView()
	view.Lines[0].Product = nil

	order := FromOrderView(view)
	require.Len(t, order.OrderProducts, 1)
	require.Nil(t, order.OrderProducts[0].Product)
	require.True(t, order.Total.IsZero())

	payload, err := json.Marshal(order)
	require.NoError(t, err)
	require.NotContains(t, string(payload), `"product"`)
}

func TestFromOrderView_CashierCarriesNoOrders(t *testing.T) {
	payload, err := json.Marshal(FromOrderView(sampleView()))
	require.NoError(t, err)
	require.Contains(t, string(payload), `"fullName":"Ava Dominie"`)
	require.NotContains(t, string(payload), `"orders"`)
}

func TestFromOrderView_DegradedCashierHasEmptyFullName(t *testing.T) {
	view := sampleView()
	view.Cashier = salestypes.CashierSummary{ID: 77}

	order := FromOrderView(view)
	require.Equal(t, int64(77), order.Cashier.ID)
	require.Empty(t, order.Cashier.FullName)

	payload, err := json.Marshal(order)
	require.NoError(t, err)
	require.Contains(t, string(payload), `"fullName":""`)
}

func TestToOrderDraft_DiscardsNestedPayloads(t *testing.T) {
	raw := []byte(`{
		"cashierId": 2,
		"paidOnDate": "2023-12-24T00:00:00Z",
		"orderProducts": [
			{"productId": 1, "quantity": 4, "product": {"id": 1, "productName": "forged", "price": 999}}
		]
	}`)
	var input OrderMutation
	require.NoError(t, json.Unmarshal(raw, &input))

	draft := ToOrderDraft(input)
	require.Equal(t, int64(2), draft.CashierID)
	require.Len(t, draft.Lines, 1)
	require.Equal(t, int64(1), draft.Lines[0].ProductID)
	require.Equal(t, int32(4), draft.Lines[0].Quantity)
}
