package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"optical-storefront/internal/domain"
)

// APISubmitter posts order drafts to the order endpoint.
type APISubmitter struct {
	url    string
	client *http.Client
}

func NewAPISubmitter(url string) *APISubmitter {
	return &APISubmitter{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type orderRequest struct {
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Email   string             `json:"email,omitempty"`
	Address string             `json:"address"`
	Notes   string             `json:"notes,omitempty"`
	Items   []domain.OrderItem `json:"items"`
	Total   int64              `json:"total"`
}

type orderResponse struct {
	ID      flexID `json:"id"`
	OrderID flexID `json:"orderId"`
	Success bool   `json:"success"`
}

// flexID accepts either a numeric or string identifier.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// Submit posts the draft. Any non-2xx status or transport failure is an
// error; the caller treats it as recoverable.
func (s *APISubmitter) Submit(ctx context.Context, draft OrderDraft) (string, error) {
	payload, err := json.Marshal(orderRequest{
		Name:    draft.CustomerName,
		Phone:   draft.Phone,
		Email:   draft.Email,
		Address: draft.Address,
		Notes:   draft.Notes,
		Items:   draft.Items,
		Total:   draft.Total,
	})
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("server error: %d", resp.StatusCode)
	}

	var res orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	switch {
	case res.OrderID != "":
		return string(res.OrderID), nil
	case res.ID != "":
		return string(res.ID), nil
	default:
		// Endpoint accepted the order but issued no id.
		return "ORDER-" + strconv.FormatInt(time.Now().UnixMilli(), 10), nil
	}
}
