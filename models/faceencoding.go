package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaceEncoding struct {
	Id        string          `gorm:"primaryKey;size:36" json:"id"`
	StudentId int64           `gorm:"index" json:"student_id"`
	RollNo    string          `gorm:"size:32" json:"roll_no"`
	Embedding json.RawMessage `gorm:"type:json" json:"-"` // raw JSON column
	Vector    []float64       `gorm:"-" json:"embedding"` // decoded helper
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

func (FaceEncoding) TableName() string {
	return "face_encodings"
}

func (f *FaceEncoding) BeforeCreate(tx *gorm.DB) error {
	if f.Id == "" {
		f.Id = uuid.NewString()
	}
	if f.Embedding == nil && f.Vector != nil {
		data, err := json.Marshal(f.Vector)
		if err != nil {
			return err
		}
		f.Embedding = data
	}
	return nil
}
