package core

import "time"

// HealthSnapshot summarizes directory state for the health endpoint.
type HealthSnapshot struct {
	AccountCount          int `json:"accountCount"`
	UsersWithLoginHistory int `json:"usersWithLoginHistory"`
}

// DashboardData bundles the figures shown on the protected dashboard.
type DashboardData struct {
	TotalUsers    int        `json:"totalUsers"`
	Role          string     `json:"role"`
	LoginTime     time.Time  `json:"loginTime"`
	PreviousLogin *time.Time `json:"previousLogin,omitempty"`
}
