package models

import "time"

// Asset records one uploaded binary, independent of the block that
// displays it.
type Asset struct {
	ID          string    `json:"id"`
	MemoryID    string    `json:"memoryId"`
	OwnerUID    string    `json:"ownerUid"`
	Tenant      string    `json:"tenant"`
	StoragePath string    `json:"storagePath"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}
