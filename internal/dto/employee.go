package dto

// CreateEmployeeRequest is the POST /api/employees body. Request fields are
// camelCase; persisted rows serialize snake_case.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// EmployeeResponse is a roster row as returned by the API.
type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}
