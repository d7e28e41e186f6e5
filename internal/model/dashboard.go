package model

// DashboardSummary is the at-a-glance view on the admin landing page.
type DashboardSummary struct {
	Today              Date                  `json:"today"`
	ActiveStudents     int                   `json:"active_students"`
	StudentsByCategory map[ClassCategory]int `json:"students_by_category"`
	SignInsToday       int                   `json:"sign_ins_today"`
	SignInsThisMonth   int                   `json:"sign_ins_this_month"`
}
