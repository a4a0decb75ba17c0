package domain

// Role is the capability set a session receives. There are exactly two: the
// operator console sees and mutates everything, a client sees and partially
// mutates only its own records.
type Role string

const (
	RoleOperator Role = "operator"
	RoleClient   Role = "client"
)

// Principal is an authenticated identity plus its resolved role.
type Principal struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (p Principal) IsOperator() bool {
	return p.Role == RoleOperator
}

// Pagination carries paging params and totals for list responses.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}
