package models

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

// gorm-backed implementations of the recognition engine's store
// interfaces.

type EncodingStore struct {
	db *gorm.DB
}

func NewEncodingStore(db *gorm.DB) *EncodingStore {
	return &EncodingStore{db: db}
}

func (s *EncodingStore) Create(enc *recognition.Enrollment) error {
	row := FaceEncoding{
		StudentId: enc.StudentID,
		RollNo:    enc.RollNo,
		Vector:    enc.Vector,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}
	enc.ID = row.Id
	enc.CreatedAt = row.CreatedAt
	return nil
}

func (s *EncodingStore) ListByStudent(studentID int64) ([]recognition.Enrollment, error) {
	var rows []FaceEncoding
	if err := s.db.Where("student_id = ?", studentID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEnrollments(rows), nil
}

func (s *EncodingStore) ListAll() ([]recognition.Enrollment, error) {
	var rows []FaceEncoding
	// Stable order: Recognize breaks similarity ties by first student
	// encountered.
	if err := s.db.Order("student_id asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEnrollments(rows), nil
}

func toEnrollments(rows []FaceEncoding) []recognition.Enrollment {
	out := make([]recognition.Enrollment, 0, len(rows))
	for _, row := range rows {
		var vec []float64
		// Skip rows whose stored JSON is corrupt rather than failing
		// the whole scan.
		if err := json.Unmarshal(row.Embedding, &vec); err != nil {
			continue
		}
		out = append(out, recognition.Enrollment{
			ID:        row.Id,
			StudentID: row.StudentId,
			RollNo:    row.RollNo,
			Vector:    vec,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}

type AttendanceStore struct {
	db *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

func (s *AttendanceStore) FindForDate(studentID int64, date string) (*recognition.AttendanceRecord, error) {
	var row Attendance
	err := s.db.Where("student_id = ? AND date = ?", studentID, date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := toAttendanceRecord(row)
	return &rec, nil
}

func (s *AttendanceStore) Create(rec *recognition.AttendanceRecord) error {
	row := Attendance{
		StudentId:   rec.StudentID,
		RollNo:      rec.RollNo,
		Date:        rec.Date,
		Status:      rec.Status,
		CheckInTime: rec.CheckInTime,
	}
	err := s.db.Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return recognition.ErrDuplicateAttendance
	}
	return err
}

func toAttendanceRecord(row Attendance) recognition.AttendanceRecord {
	return recognition.AttendanceRecord{
		StudentID:   row.StudentId,
		RollNo:      row.RollNo,
		Date:        row.Date,
		Status:      row.Status,
		CheckInTime: row.CheckInTime,
	}
}

type StudentDirectory struct {
	db *gorm.DB
}

func NewStudentDirectory(db *gorm.DB) *StudentDirectory {
	return &StudentDirectory{db: db}
}

func (s *StudentDirectory) FindStudent(id int64) (*recognition.Identity, error) {
	var student Student
	err := s.db.First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, recognition.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recognition.Identity{ID: student.Id, RollNo: student.RollNo}, nil
}
