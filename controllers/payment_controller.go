package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/filemyrti/rti-backend/gateway"
	"github.com/filemyrti/rti-backend/utils"
	"github.com/gin-gonic/gin"
)

// MinOrderAmountPaise is the smallest charge the gateway accepts
const MinOrderAmountPaise = 100

var (
	paymentGateway gateway.Client
	paymentSecret  string
)

// InitPaymentGateway wires the gateway client and signing secret constructed
// at startup into the payment handlers. Must be called before the payment
// routes serve traffic.
func InitPaymentGateway(client gateway.Client, keySecret string) {
	paymentGateway = client
	paymentSecret = keySecret
}

// computePaymentSignature recomputes the gateway's payment signature:
// hex(HMAC-SHA256(secret, order_id + "|" + payment_id))
func computePaymentSignature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// POST /v1/payments/orders
func CreatePaymentOrder(c *gin.Context) {
	utils.LogInfo("CreatePaymentOrder called")

	var req struct {
		Amount   float64                `json:"amount"`
		Currency string                 `json:"currency"`
		Receipt  string                 `json:"receipt"`
		Notes    map[string]interface{} `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order creation request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.Amount <= 0 {
		utils.LogError("Order creation rejected - amount missing or not positive: %.2f", req.Amount)
		utils.BadRequest(c, "Amount is required and must be greater than zero", nil)
		return
	}

	// Amounts arrive in paise already; round away any fractional paise
	amountPaise := int(math.Round(req.Amount))
	if amountPaise < MinOrderAmountPaise {
		utils.LogError("Order creation rejected - amount below minimum: %d paise", amountPaise)
		utils.BadRequest(c, "Minimum amount is ₹1 (100 paise)", nil)
		return
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "INR"
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = "receipt_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	notes := req.Notes
	if notes == nil {
		notes = map[string]interface{}{}
	}

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	utils.LogDebug("Creating payment order - amount: %d paise, currency: %s, receipt: %s", amountPaise, currency, receipt)

	order, err := paymentGateway.CreateOrder(orderData)
	if err != nil {
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			utils.LogError("Gateway rejected order creation: %s", gwErr.Description)
			utils.BadRequest(c, "Failed to create payment order", gwErr.Description)
			return
		}
		utils.LogError("Order creation failed: %v", err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}
	utils.LogInfo("Created payment order %v", order["id"])

	utils.Success(c, "Order created successfully", gin.H{
		"id":         order["id"],
		"amount":     order["amount"],
		"currency":   order["currency"],
		"receipt":    order["receipt"],
		"status":     order["status"],
		"created_at": order["created_at"],
	})
}

// POST /v1/payments/verify
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req struct {
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
		OrderID           string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request: %v", err)
		utils.BadRequest(c, "Invalid request. razorpay_payment_id, razorpay_order_id, razorpay_signature and order_id are required", err.Error())
		return
	}

	// A signature mismatch is definitive: the payment is not verified and
	// retrying the same request cannot change that.
	generatedSignature := computePaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, paymentSecret)
	if generatedSignature != req.RazorpaySignature {
		utils.LogError("Payment verification failed for order ID: %s, payment ID: %s", req.RazorpayOrderID, req.RazorpayPaymentID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}
	utils.LogInfo("Payment signature verified for order ID: %s", req.RazorpayOrderID)

	// Cross-check with the gateway's authoritative payment record. A failure
	// here is a different error class than a signature mismatch: the
	// signature was genuine, so the client may retry the lookup.
	payment, err := paymentGateway.FetchPayment(req.RazorpayPaymentID)
	if err != nil {
		utils.LogError("Payment status fetch failed for payment ID: %s: %v", req.RazorpayPaymentID, err)
		utils.InternalServerError(c, "Payment verified but status lookup failed", gin.H{"retry": true})
		return
	}
	utils.LogInfo("Payment %s status: %v", req.RazorpayPaymentID, payment["status"])

	utils.Success(c, "Payment verified successfully", gin.H{
		"payment_id":        req.RazorpayPaymentID,
		"order_id":          req.OrderID,
		"razorpay_order_id": req.RazorpayOrderID,
		"amount":            payment["amount"],
		"currency":          payment["currency"],
		"status":            payment["status"],
		"method":            payment["method"],
		"created_at":        payment["created_at"],
	})
}

// GET /v1/payments/orders/:orderId
func GetOrderStatus(c *gin.Context) {
	utils.LogInfo("GetOrderStatus called")

	orderID := c.Param("orderId")
	if orderID == "" {
		utils.BadRequest(c, "Order ID is required", nil)
		return
	}

	order, err := paymentGateway.FetchOrder(orderID)
	if err != nil {
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			utils.LogError("Gateway order fetch failed for order ID: %s: %s", orderID, gwErr.Description)
			utils.NotFound(c, gwErr.Description)
			return
		}
		utils.LogError("Order fetch failed for order ID: %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch order", nil)
		return
	}

	utils.Success(c, "Order fetched successfully", gin.H{
		"id":          order["id"],
		"amount":      order["amount"],
		"amount_paid": order["amount_paid"],
		"amount_due":  order["amount_due"],
		"currency":    order["currency"],
		"receipt":     order["receipt"],
		"status":      order["status"],
		"created_at":  order["created_at"],
	})
}
