package models

// DashboardStats is the fully derived portfolio summary. It is recomputed
// by the statistics engine after relevant mutations and never edited
// directly. OccupancyRate is a raw percentage; rounding is a display concern.
type DashboardStats struct {
	TotalProperties   int     `json:"totalProperties"`
	TotalUnits        int     `json:"totalUnits"`
	OccupancyRate     float64 `json:"occupancyRate"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	PendingPayments   int     `json:"pendingPayments"`
	OverduePayments   int     `json:"overduePayments"`
	UnderpaidPayments int     `json:"underpaidPayments"`
}
