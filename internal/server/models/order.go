package models

import "time"

type ProductType string

const (
	ProductMemory    ProductType = "memory"
	ProductExtension ProductType = "extension"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"

	OrderCreated          = "created"
	OrderCredentialIssued = "credentialIssued"
	OrderFulfilled        = "fulfilled"
)

// Order is a purchase record. It carries at most one secret credential.
type Order struct {
	ID                  string      `json:"id"`
	Email               string      `json:"email"`
	Tenant              string      `json:"tenant"`
	ProductType         ProductType `json:"productType"`
	MemoryID            string      `json:"memoryId,omitempty"`
	SecretKey           string      `json:"secretKey,omitempty"`
	SecretKeyExpiresAt  *time.Time  `json:"secretKeyExpiresAt,omitempty"`
	SecretKeyConsumedAt *time.Time  `json:"secretKeyConsumedAt,omitempty"`
	PaymentStatus       string      `json:"paymentStatus"`
	OrderStatus         string      `json:"orderStatus"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// HasCredential reports whether a secret key was already issued.
func (o *Order) HasCredential() bool {
	return o.SecretKey != ""
}
