package models

// Stats is the dashboard snapshot; it is computed on every request.
type Stats struct {
	TotalLeads        int `json:"totalLeads"`
	TotalApplications int `json:"totalApplications"`
	InProgress        int `json:"inProgress"`
	Completed         int `json:"completed"`
	NotStarted        int `json:"notStarted"`
	Upcoming7         int `json:"upcoming7"`
	Upcoming14        int `json:"upcoming14"`
	Upcoming21        int `json:"upcoming21"`
}
