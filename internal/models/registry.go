package models

// ModelRegistry lists every model covered by --auto-migrate. SQL migrations
// under migrations/ remain the source of truth for deployed environments.
var ModelRegistry = []interface{}{
	&WaitlistSubmission{},
	&VendorPreRegistration{},
}
