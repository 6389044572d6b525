package response_models

type StatBlock struct {
	Total        int64   `json:"total"`
	CurrentMonth int64   `json:"currentMonth"`
	LastMonth    int64   `json:"lastMonth"`
	Trend        []int64 `json:"trend"`
}

type DashboardStats struct {
	Users StatBlock `json:"users"`
	Trips StatBlock `json:"trips"`
}

type GrowthPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
