package entity

import (
	"time"

	"github.com/google/uuid"
)

// CarrierStore is a sender location registered with the carrier.
// Stores are synced from the partner inventory listing and are unique
// per (GroupAddressID, AccountID).
type CarrierStore struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the store.
	AccountID      uuid.UUID // The account this store belongs to.
	GroupAddressID int64     // Carrier-side inventory identifier (groupaddressId).
	CustomerID     int64     // Carrier-side customer identifier (cusId).
	Name           string    // Store display name.
	Phone          string    // Contact phone for pickup.
	Address        string    // Full pickup address text.
	ProvinceID     int       // Carrier province identifier.
	DistrictID     int       // Carrier district identifier.
	WardsID        int       // Carrier ward identifier.
	IsDefault      bool      // At most one default store per account.
	Active         bool      // Stores removed from the carrier inventory are archived, not deleted.
	CreatedAt      time.Time // Timestamp of when this store was first synced.
	UpdatedAt      time.Time // Timestamp of the last sync or manual change.
}
