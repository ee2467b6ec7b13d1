package recognition

import "time"

// Identity is the slice of a student the engine needs: an opaque id
// plus the roll number denormalized into attendance rows.
type Identity struct {
	ID     int64
	RollNo string
}

// Enrollment is one stored face capture. Vectors are persisted already
// L2-normalized and are never mutated after creation.
type Enrollment struct {
	ID        string
	StudentID int64
	RollNo    string
	Vector    []float64
	CreatedAt time.Time
}

// AttendanceRecord is one check-in. Date is the local calendar day in
// 2006-01-02 form; together with StudentID it is unique.
type AttendanceRecord struct {
	StudentID   int64
	RollNo      string
	Date        string
	Status      string
	CheckInTime time.Time
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// EncodingStore persists enrollments. Writes are append-only.
type EncodingStore interface {
	// Create persists the enrollment and fills in its ID and CreatedAt.
	Create(enc *Enrollment) error
	// ListByStudent returns a student's enrollments, newest first.
	ListByStudent(studentID int64) ([]Enrollment, error)
	// ListAll returns every enrollment in a stable order (by student,
	// then creation). Recognize relies on that order for deterministic
	// tie-breaking.
	ListAll() ([]Enrollment, error)
}

// AttendanceStore persists attendance records and must enforce a
// uniqueness constraint on (student, date).
type AttendanceStore interface {
	// FindForDate returns the record for the student on the given day,
	// or (nil, nil) when none exists.
	FindForDate(studentID int64, date string) (*AttendanceRecord, error)
	// Create persists the record, returning ErrDuplicateAttendance when
	// the (student, date) constraint rejects the insert.
	Create(rec *AttendanceRecord) error
}

// Directory resolves student ids supplied by the surrounding app. It
// must return ErrStudentNotFound for unknown ids.
type Directory interface {
	FindStudent(id int64) (*Identity, error)
}
