package models

import "time"

type Student struct {
	Id           int64     `gorm:"primaryKey" json:"id"`
	RollNo       string    `gorm:"uniqueIndex;size:32" json:"roll_no"`
	FullName     string    `json:"full_name"`
	EmailAddress string    `gorm:"uniqueIndex;size:128" json:"email_address"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	Password     string    `json:"-"` // bcrypt hash
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}
