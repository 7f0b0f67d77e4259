package dto

// SummaryTotals are the store-wide counts.
type SummaryTotals struct {
	Employees int64 `json:"employees"`
	Records   int64 `json:"records"`
	Present   int64 `json:"present"`
}

// EmployeePresence is one employee's present-day count. Every employee
// appears exactly once, count 0 included.
type EmployeePresence struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	PresentDays int64  `json:"present_days"`
}

// SummaryResponse is the GET /api/summary body.
type SummaryResponse struct {
	Totals            SummaryTotals      `json:"totals"`
	PresentByEmployee []EmployeePresence `json:"presentByEmployee"`
}
