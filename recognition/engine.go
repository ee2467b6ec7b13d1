package recognition

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/Mahi-singh03/DEMO-APP/helper"
)

// Reason classifies the outcome of a recognition attempt.
type Reason string

const (
	ReasonAccepted       Reason = "Accepted"
	ReasonNotRecognized  Reason = "NotRecognized"
	ReasonNoFaceDetected Reason = "NoFaceDetected"
)

// MatchResult is the outcome of Recognize. NotRecognized is a normal
// business result, not an error: open-set matching must be able to say
// "none of the known students".
type MatchResult struct {
	Matched    bool
	StudentID  int64
	Confidence float64
	Reason     Reason
}

// MarkResult reports whether MarkAttendance created a new record or
// found an existing one for the day.
type MarkResult struct {
	Created bool
	Record  *AttendanceRecord
}

// Engine is the face-recognition attendance matcher. It enrolls
// captures, classifies probes against per-student centroids, and
// guards attendance marking against same-day duplicates.
//
// No cap is enforced on enrollments per student; every extra capture
// angle just feeds the centroid.
type Engine struct {
	cfg        Config
	encoder    Encoder
	encodings  EncodingStore
	attendance AttendanceStore
	students   Directory

	now func() time.Time
}

func NewEngine(cfg Config, enc Encoder, encodings EncodingStore, attendance AttendanceStore, students Directory) *Engine {
	return &Engine{
		cfg:        cfg,
		encoder:    enc,
		encodings:  encodings,
		attendance: attendance,
		students:   students,
		now:        time.Now,
	}
}

// Enroll encodes the payload and stores it as a new face sample for the
// student. The raw embedding must clear the enrollment energy floor;
// otherwise nothing is persisted and ErrNoFaceDetected is returned.
func (e *Engine) Enroll(studentID int64, payload string) (string, error) {
	ident, err := e.students.FindStudent(studentID)
	if err != nil {
		return "", err
	}

	data, err := DecodePayload(payload)
	if err != nil {
		return "", err
	}

	raw := e.encoder.Encode(data)
	if !e.cfg.ValidVector(raw, ModeEnrollment) {
		return "", ErrNoFaceDetected
	}

	enc := &Enrollment{
		StudentID: ident.ID,
		RollNo:    ident.RollNo,
		Vector:    helper.Normalize(raw),
	}
	if err := e.encodings.Create(enc); err != nil {
		return "", err
	}
	return enc.ID, nil
}

// ListEnrollments returns the student's stored samples, newest first.
func (e *Engine) ListEnrollments(studentID int64) ([]Enrollment, error) {
	if _, err := e.students.FindStudent(studentID); err != nil {
		return nil, err
	}
	return e.encodings.ListByStudent(studentID)
}

type candidate struct {
	studentID  int64
	similarity float64
	samples    int
}

// Recognize classifies a probe payload against every enrolled student.
// Centroids are recomputed from the current enrollment set on every
// call; a linear scan is fine at classroom scale and always reflects
// the latest enrollments.
func (e *Engine) Recognize(payload string) (MatchResult, error) {
	data, err := DecodePayload(payload)
	if err != nil {
		return MatchResult{}, err
	}

	raw := e.encoder.Encode(data)
	if !e.cfg.ValidVector(raw, ModeProbe) {
		return MatchResult{Reason: ReasonNoFaceDetected}, nil
	}
	probe := helper.Normalize(raw)

	all, err := e.encodings.ListAll()
	if err != nil {
		return MatchResult{}, err
	}

	// Group per student, preserving first-encountered order so equal
	// similarities resolve deterministically.
	order := make([]int64, 0)
	grouped := make(map[int64][][]float64)
	for _, enc := range all {
		if _, seen := grouped[enc.StudentID]; !seen {
			order = append(order, enc.StudentID)
		}
		grouped[enc.StudentID] = append(grouped[enc.StudentID], enc.Vector)
	}

	candidates := make([]candidate, 0, len(order))
	for _, id := range order {
		centroid, samples := e.centroidOf(grouped[id])
		if samples == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			studentID:  id,
			similarity: helper.CosineSimilarity(probe, centroid),
			samples:    samples,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) == 0 {
		return MatchResult{Reason: ReasonNotRecognized}, nil
	}

	top1 := candidates[0]
	required := e.cfg.BaseSimilarityThreshold + e.cfg.SampleCountAdjust
	if top1.samples >= e.cfg.SampleCountCutoff {
		required = e.cfg.BaseSimilarityThreshold - e.cfg.SampleCountAdjust
	}

	if top1.similarity < required {
		return MatchResult{Reason: ReasonNotRecognized}, nil
	}
	if len(candidates) > 1 && top1.similarity-candidates[1].similarity < e.cfg.MarginThreshold {
		return MatchResult{Reason: ReasonNotRecognized}, nil
	}

	return MatchResult{
		Matched:    true,
		StudentID:  top1.studentID,
		Confidence: math.Round(top1.similarity*1000) / 1000,
		Reason:     ReasonAccepted,
	}, nil
}

// centroidOf re-validates each stored vector (defensive, stored data
// should already be clean), averages the survivors component-wise and
// re-normalizes the mean. samples is the number of vectors that made it
// into the average.
func (e *Engine) centroidOf(vectors [][]float64) ([]float64, int) {
	cleaned := make([][]float64, 0, len(vectors))
	for _, v := range vectors {
		if !e.cfg.ValidVector(v, ModeEnrollment) {
			continue
		}
		cleaned = append(cleaned, helper.Normalize(v))
	}
	if len(cleaned) == 0 {
		return nil, 0
	}
	return helper.Normalize(helper.Mean(cleaned)), len(cleaned)
}

// MarkAttendance records the student as present for the current local
// calendar day. Calling it again the same day is an idempotent success
// returning the first-written record; the storage-level (student, date)
// constraint settles concurrent calls.
func (e *Engine) MarkAttendance(studentID int64) (MarkResult, error) {
	ident, err := e.students.FindStudent(studentID)
	if err != nil {
		return MarkResult{}, err
	}

	now := e.now()
	date := now.Format("2006-01-02")

	existing, err := e.attendance.FindForDate(ident.ID, date)
	if err != nil {
		return MarkResult{}, err
	}
	if existing != nil {
		return MarkResult{Created: false, Record: existing}, nil
	}

	rec := &AttendanceRecord{
		StudentID:   ident.ID,
		RollNo:      ident.RollNo,
		Date:        date,
		Status:      StatusPresent,
		CheckInTime: now,
	}
	err = e.attendance.Create(rec)
	if errors.Is(err, ErrDuplicateAttendance) {
		// Lost the race to a concurrent mark; the constraint kept the
		// first write, so return that one.
		existing, err := e.attendance.FindForDate(ident.ID, date)
		if err != nil {
			return MarkResult{}, err
		}
		return MarkResult{Created: false, Record: existing}, nil
	}
	if err != nil {
		return MarkResult{}, err
	}
	return MarkResult{Created: true, Record: rec}, nil
}
