package recognition

import "errors"

var (
	// ErrInvalidInput means the payload itself was missing or could not
	// be decoded; the caller must re-capture.
	ErrInvalidInput = errors.New("invalid image payload")

	// ErrNoFaceDetected means the embedding failed the validity checks.
	ErrNoFaceDetected = errors.New("no face detected")

	// ErrStudentNotFound means the identity is unknown to the directory.
	ErrStudentNotFound = errors.New("student not found")

	// ErrDuplicateAttendance is returned by an AttendanceStore when the
	// (student, date) uniqueness constraint rejects an insert. The
	// engine maps it to the idempotent "already marked" path.
	ErrDuplicateAttendance = errors.New("attendance already marked for this date")
)
