package gateway

import (
	razorpay "github.com/razorpay/razorpay-go"
)

// Error wraps a failure reported by the payment gateway so handlers can
// forward the gateway's description without depending on SDK error types.
type Error struct {
	Description string
}

func (e *Error) Error() string {
	return e.Description
}

// Client is the subset of gateway operations the payment endpoints need.
// Handlers depend on this interface so tests can substitute a mock.
type Client interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrder(orderID string) (map[string]interface{}, error)
	FetchPayment(paymentID string) (map[string]interface{}, error)
}

// RazorpayClient implements Client using the Razorpay SDK. It is constructed
// once at startup with validated credentials and injected into the payment
// controllers; there is no lazily-initialized fallback.
type RazorpayClient struct {
	client *razorpay.Client
	KeyID  string
}

// NewRazorpayClient creates a gateway client from the given key pair
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
		KeyID:  keyID,
	}
}

// CreateOrder asks the gateway to mint an order for the given amount/currency
func (r *RazorpayClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	order, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, &Error{Description: err.Error()}
	}
	return order, nil
}

// FetchOrder retrieves the authoritative order record from the gateway
func (r *RazorpayClient) FetchOrder(orderID string) (map[string]interface{}, error) {
	order, err := r.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, &Error{Description: err.Error()}
	}
	return order, nil
}

// FetchPayment retrieves the authoritative payment record from the gateway
func (r *RazorpayClient) FetchPayment(paymentID string) (map[string]interface{}, error) {
	payment, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, &Error{Description: err.Error()}
	}
	return payment, nil
}
