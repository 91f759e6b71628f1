package dto

// DashboardResponse carries the participation metrics and the monthly
// line-chart series for one user.
type DashboardResponse struct {
	TotalRegistered         int      `json:"totalRegistered"`
	TotalAttended           int      `json:"totalAttended"`
	ParticipationRate       int      `json:"participationRate"`
	MonthLabels             []string `json:"monthLabels"`
	MonthlyRegisteredCounts []int    `json:"monthlyRegisteredCounts"`
	MonthlyAttendedCounts   []int    `json:"monthlyAttendedCounts"`
	MonthlyMaxCount         int      `json:"monthlyMaxCount"`
	LinePointsRegistered    string   `json:"linePointsRegistered"`
	LinePointsAttended      string   `json:"linePointsAttended"`
}
