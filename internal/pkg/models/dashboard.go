package models

// DashboardStats summarizes a user's challenges
type DashboardStats struct {
	TotalChallenges     int     `json:"totalChallenges"`
	ActiveChallenges    int     `json:"activeChallenges"`
	CompletedChallenges int     `json:"completedChallenges"`
	TotalProfit         float64 `json:"totalProfit"`
}

// Dashboard is the user dashboard view
type Dashboard struct {
	Stats              DashboardStats `json:"stats"`
	Challenges         []Challenge    `json:"challenges"`
	RecentTransactions []Transaction  `json:"recentTransactions"`
}

// AdminStats summarizes the whole marketplace
type AdminStats struct {
	TotalUsers      int `json:"totalUsers"`
	TotalChallenges int `json:"totalChallenges"`
	TotalRevenue    int `json:"totalRevenue"`
}

// AdminDashboard is the operator dashboard view
type AdminDashboard struct {
	Stats            AdminStats  `json:"stats"`
	RecentUsers      []User      `json:"recentUsers"`
	RecentChallenges []Challenge `json:"recentChallenges"`
}
