package models

import "gorm.io/gorm"

// Waitlist roles. Anything outside this set is coerced to RoleOther before
// the row is written; the column itself carries no constraint.
const (
	RoleUser   = "User"
	RoleVendor = "Vendor"
	RoleOther  = "Other"
)

// WaitlistSubmission is a single lead captured from the landing page.
// Rows are append-only: there is no update or delete path, and duplicate
// emails are allowed on purpose (no uniqueness, no dedup).
type WaitlistSubmission struct {
	gorm.Model
	Email    string  `gorm:"not null;index"`
	FullName *string // nil when the visitor left the field blank
	Role     string  `gorm:"not null;default:Other"`
}
