package model

import "time"

// Employee roster row. The id is externally assigned and immutable; there
// is no update operation in the API.
type Employee struct {
	EmployeeID string    `gorm:"column:employee_id;type:varchar(64);primaryKey"              json:"employee_id"`
	FullName   string    `gorm:"column:full_name;type:varchar(120);not null"                 json:"full_name"`
	Email      string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:idx_employees_email" json:"email"`
	Department string    `gorm:"column:department;type:varchar(80);not null"                 json:"department"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"        json:"created_at"`

	// Has-many association so migrations place the cascading foreign key on
	// attendance_records, referencing this table.
	AttendanceRecords []AttendanceRecord `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (Employee) TableName() string { return "employees" }
