//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	pacttest "github.com/cornerstore/cornerstore-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type productPayload struct {
	ID         int64   `json:"id"`
	Name       string  `json:"productName"`
	Price      float64 `json:"price"`
	Brand      string  `json:"brand"`
	CategoryID int64   `json:"categoryId"`
}

type orderPayload struct {
	ID         int64   `json:"id"`
	CashierID  int64   `json:"cashierId"`
	Total      float64 `json:"total"`
	PaidOnDate string  `json:"paidOnDate"`
}

type cashierPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestRegisterPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	productMatcher := matchers.Map{
		"id":          matchers.Like(1),
		"productName": matchers.Like("Kit-kat"),
		"price":       matchers.Like(1.50),
		"categoryId":  matchers.Like(3),
	}
	orderMatcher := matchers.Map{
		"id":         matchers.Like(pacttest.ExistingOrderID),
		"cashierId":  matchers.Like(1),
		"total":      matchers.Like(5.50),
		"paidOnDate": matchers.Regex("2023-12-05T00:00:00Z", `\d{4}-\d{2}-\d{2}T.*`),
	}
	cashierMatcher := matchers.Map{
		"id":        matchers.Like(4),
		"firstName": matchers.Like("Pact"),
		"lastName":  matchers.Like("Cashier"),
		"fullName":  matchers.Like("Pact Cashier"),
	}

	pact.AddInteraction().
		Given(pacttest.StateStoreSeeded).
		UponReceiving("a product search by name").
		WithRequest("GET", "/products", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("search", matchers.S("kit"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(productMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request for an existing order detail").
		WithRequest("GET", fmt.Sprintf("/orderDetail/%d", pacttest.ExistingOrderID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(orderMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request to delete a missing order").
		WithRequest("DELETE", fmt.Sprintf("/order/%d", pacttest.MissingOrderID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCashiersEmpty).
		UponReceiving("a request to create a cashier").
		WithRequest("POST", "/cashiers", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"firstName": matchers.Like("Pact"),
				"lastName":  matchers.Like("Cashier"),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(cashierMatcher)
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newStoreClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		products, err := client.SearchProducts(ctx, "kit")
		if err != nil {
			return fmt.Errorf("search products: %w", err)
		}
		if len(products) == 0 {
			return fmt.Errorf("expected at least one product match")
		}

		orders, err := client.GetOrderDetail(ctx, pacttest.ExistingOrderID)
		if err != nil {
			return fmt.Errorf("get order detail: %w", err)
		}
		if len(orders) != 1 || orders[0].ID != pacttest.ExistingOrderID {
			return fmt.Errorf("expected order %d, got %+v", pacttest.ExistingOrderID, orders)
		}

		if err := client.DeleteOrder(ctx, pacttest.MissingOrderID); err == nil {
			return fmt.Errorf("expected 404 for order %d", pacttest.MissingOrderID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		cashier, err := client.CreateCashier(ctx, pacttest.ExampleCashierPayload())
		if err != nil {
			return fmt.Errorf("create cashier: %w", err)
		}
		if cashier == nil || cashier.FullName == "" {
			return fmt.Errorf("expected created cashier with derived full name")
		}

		return nil
	})
	require.NoError(t, err)
}

type storeClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStoreClient(config pactconsumer.MockServerConfig) *storeClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &storeClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *storeClient) SearchProducts(ctx context.Context, search string) ([]productPayload, error) {
	endpoint := fmt.Sprintf("%s/products?search=%s", c.baseURL, url.QueryEscape(search))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload []productPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *storeClient) GetOrderDetail(ctx context.Context, id int64) ([]orderPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orderDetail/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload []orderPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *storeClient) DeleteOrder(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/order/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	return nil
}

func (c *storeClient) CreateCashier(ctx context.Context, payload map[string]any) (*cashierPayload, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cashiers", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var created cashierPayload
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
