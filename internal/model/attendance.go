package model

import "time"

// Attendance statuses. Case-sensitive; nothing else is accepted.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is one day's status for one employee. At most one record
// exists per (employee_id, date); deleting the employee cascades to its
// records through the store's foreign key rule.
type AttendanceRecord struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"                                        json:"id"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       string    `gorm:"column:date;type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date;index:idx_attendance_date" json:"date"`
	Status     string    `gorm:"column:status;type:varchar(10);not null"                                   json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"                      json:"created_at"`
}

// TableName maps the model to its table.
func (AttendanceRecord) TableName() string { return "attendance_records" }
