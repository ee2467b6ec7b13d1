package jobs

import (
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"github.com/Mahi-singh03/DEMO-APP/models"
	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

// StartScheduler runs the daily absentee sweep shortly before midnight,
// local time.
func StartScheduler() *gocron.Scheduler {
	s := gocron.NewScheduler(time.Local)
	if _, err := s.Every(1).Day().At("23:55").Do(MarkAbsentees); err != nil {
		log.Printf("failed to schedule absentee job: %v", err)
	}
	s.StartAsync()
	return s
}

// MarkAbsentees inserts an Absent record for every student who has no
// attendance row for today. The (student, date) unique index means a
// check-in racing this sweep always wins; the duplicate insert is
// simply skipped.
func MarkAbsentees() {
	date := time.Now().Format("2006-01-02")

	var students []models.Student
	if err := models.DB.Find(&students).Error; err != nil {
		log.Printf("absentee sweep: failed to list students: %v", err)
		return
	}

	marked := 0
	for _, student := range students {
		var count int64
		if err := models.DB.Model(&models.Attendance{}).
			Where("student_id = ? AND date = ?", student.Id, date).
			Count(&count).Error; err != nil {
			log.Printf("absentee sweep: lookup failed for student %d: %v", student.Id, err)
			continue
		}
		if count > 0 {
			continue
		}

		record := models.Attendance{
			StudentId: student.Id,
			RollNo:    student.RollNo,
			Date:      date,
			Status:    recognition.StatusAbsent,
		}
		if err := models.DB.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			log.Printf("absentee sweep: insert failed for student %d: %v", student.Id, err)
			continue
		}
		marked++
	}

	log.Printf("absentee sweep for %s: %d students marked absent", date, marked)
}
