package models

import "time"

// Attendance is one check-in per student per calendar day. The
// composite unique index is what makes concurrent marking safe: the
// second insert for the same day fails and is treated as "already
// marked", never as an error the user sees.
type Attendance struct {
	Id          int64     `gorm:"primaryKey" json:"id"`
	StudentId   int64     `gorm:"uniqueIndex:idx_student_date" json:"student_id"`
	RollNo      string    `gorm:"size:32" json:"roll_no"`
	Date        string    `gorm:"uniqueIndex:idx_student_date;size:10" json:"date"`
	Status      string    `gorm:"size:16" json:"status"`
	CheckInTime time.Time `json:"check_in_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
