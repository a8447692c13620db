package domain

// EnforceRequest is the permission check passed between the middleware
// layer and the rbac service. Kept in its own package so neither side
// has to import the other.
type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
