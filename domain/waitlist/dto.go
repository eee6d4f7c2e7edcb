package waitlist

// JoinRequest is the landing-page waitlist form payload. Field names match
// the form exactly. Validation is intentionally not expressed as binding
// tags: the product contract coerces instead of rejecting (unknown roles
// become Other), which gin's validator cannot express.
type JoinRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
