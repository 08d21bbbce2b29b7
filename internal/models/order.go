package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderDraftItem snapshots the price the user saw at submit time. The backend
// must not substitute the current catalog price at fulfillment.
type OrderDraftItem struct {
	ProductID           int64   `json:"productId"`
	Quantity            int     `json:"quantity"`
	UnitPriceAtPurchase float64 `json:"price"`
}

// OrderDraft is assembled transiently at submit time; it is not kept around
// after the checkout call returns.
type OrderDraft struct {
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	ShippingAddress string           `json:"shippingAddress"`
	Items           []OrderDraftItem `json:"items"`
}

type Order struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	FullName        string           `json:"full_name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	ShippingAddress string           `json:"shipping_address"`
	Status          OrderStatus      `json:"status"`
	TotalAmount     float64          `json:"total_amount"`
	Items           []OrderDraftItem `json:"items,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Payment is cash-on-delivery only, so an order needs no payment intent.

type CheckoutRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
}
