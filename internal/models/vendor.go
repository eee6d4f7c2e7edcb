package models

import "gorm.io/gorm"

// VendorPreRegistration is the detailed business-intent record a prospective
// vendor submits. Only BusinessName and Email are required; every other field
// is stored as NULL when the form left it empty. Append-only, like the
// waitlist table, and intentionally unlinked from it (no foreign key; the
// vendor flow mirrors the email into waitlist_submissions best-effort).
type VendorPreRegistration struct {
	gorm.Model
	BusinessName      string `gorm:"not null"`
	ContactName       *string
	Email             string `gorm:"not null;index"`
	Phone             *string
	City              *string
	Category          *string
	Website           *string
	Instagram         *string
	PriceRange        *string
	AvailabilityMonth *string
	Notes             *string
}
