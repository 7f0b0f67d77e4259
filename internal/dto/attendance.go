package dto

// RecordAttendanceRequest is the POST /api/attendance body.
type RecordAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// AttendanceFilter carries the optional date range of an attendance query.
// Bounds are inclusive; either side may be empty.
type AttendanceFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// AttendanceResponse is one attendance record as returned by the API.
type AttendanceResponse struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}
