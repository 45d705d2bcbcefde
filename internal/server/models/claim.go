package models

import "time"

type ClaimStatus string

// Claim lifecycle: pending -> secretIssued -> urlsSet -> claimed.
const (
	ClaimPending      ClaimStatus = "pending"
	ClaimSecretIssued ClaimStatus = "secretIssued"
	ClaimURLsSet      ClaimStatus = "urlsSet"
	ClaimClaimed      ClaimStatus = "claimed"
)

// ClaimRequest tracks one purchase-to-claim journey.
type ClaimRequest struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Tenant        string      `json:"tenant"`
	OrderID       string      `json:"orderId"`
	Status        ClaimStatus `json:"status"`
	PublicPageID  string      `json:"publicPageId,omitempty"`
	PublicPageURL string      `json:"publicPageUrl,omitempty"`
	LoginURL      string      `json:"loginUrl,omitempty"`
	LoginEmail    string      `json:"loginEmail,omitempty"`
	ClaimedByUID  string      `json:"claimedByUid,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
