// Package carrier implements the shipping carrier API client. Every
// failure that originates on the carrier side is wrapped in an
// UpstreamFailureError so handlers can map it without inspecting HTTP
// details.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

const serviceName = "carrier"

// Client talks to the carrier's label API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a carrier client for the API at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type purchaseRequest struct {
	OrderRef string         `json:"order_ref"`
	Address  addressPayload `json:"address"`
	Parcel   parcelPayload  `json:"parcel"`
}

type addressPayload struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type parcelPayload struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WeightG  float64 `json:"weight_g"`
}

type purchaseResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	LabelURL       string `json:"label_url"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PurchaseLabel buys a shipping label for the given destination and parcel.
func (c *Client) PurchaseLabel(ctx context.Context, orderRef string, addr shipment.Address, parcel shipment.Parcel) (ports.LabelInfo, error) {
	payload, err := json.Marshal(purchaseRequest{
		OrderRef: orderRef,
		Address: addressPayload{
			Name:       addr.Name,
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Phone:      addr.Phone,
		},
		Parcel: parcelPayload{
			LengthCm: parcel.LengthCm,
			WidthCm:  parcel.WidthCm,
			HeightCm: parcel.HeightCm,
			WeightG:  parcel.WeightG,
		},
	})
	if err != nil {
		return ports.LabelInfo{}, fmt.Errorf("marshal label purchase: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/labels", bytes.NewReader(payload))
	if err != nil {
		return ports.LabelInfo{}, fmt.Errorf("create label purchase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.LabelInfo{}, errs.NewUpstreamFailureError(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return ports.LabelInfo{}, errs.NewUpstreamFailureError(serviceName, c.apiError(resp))
	}

	var result purchaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ports.LabelInfo{}, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("decode label purchase response: %w", err))
	}
	if result.TrackingNumber == "" {
		return ports.LabelInfo{}, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("label purchase response missing tracking number"))
	}

	return ports.LabelInfo{
		TrackingNumber: result.TrackingNumber,
		Carrier:        result.Carrier,
		LabelURL:       result.LabelURL,
	}, nil
}

// VoidLabel voids a previously purchased label. A label the carrier already
// voided maps to ports.ErrLabelAlreadyVoided so callers can treat the void
// as settled.
func (c *Client) VoidLabel(ctx context.Context, trackingNumber string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/labels/"+trackingNumber+"/void", nil)
	if err != nil {
		return fmt.Errorf("create label void request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewUpstreamFailureError(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusConflict:
		return ports.ErrLabelAlreadyVoided
	default:
		return errs.NewUpstreamFailureError(serviceName, c.apiError(resp))
	}
}

func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("carrier returned %d: %s (%s)", resp.StatusCode, apiErr.Message, apiErr.Code)
	}
	return fmt.Errorf("carrier returned %d: %s", resp.StatusCode, string(body))
}
