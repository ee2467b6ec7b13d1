package attendance

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahi-singh03/DEMO-APP/models"
	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

type Controller struct {
	engine *recognition.Engine
}

func NewController(engine *recognition.Engine) *Controller {
	return &Controller{engine: engine}
}

type recognizePayload struct {
	ImageData string `json:"imageData" binding:"required"`
}

// Recognize matches the submitted frame against every enrolled student.
// "Not recognized" is a normal answer here, not a failure.
func (ct *Controller) Recognize(c *gin.Context) {
	var payload recognizePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "imageData is required"})
		return
	}

	result, err := ct.engine.Recognize(payload.ImageData)
	if errors.Is(err, recognition.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "imageData is malformed"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Recognition failed"})
		return
	}

	switch result.Reason {
	case recognition.ReasonNoFaceDetected:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":      false,
			"detectedFace": false,
			"message":      "No face detected. Please align your face in the frame.",
		})
	case recognition.ReasonNotRecognized:
		c.JSON(http.StatusOK, gin.H{
			"success":      false,
			"detectedFace": true,
			"message":      "Student not recognized. If you are a student, please register your face.",
		})
	default:
		var student models.Student
		if err := models.DB.First(&student, result.StudentID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Student not found for encoding"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"detectedFace": true,
			"student":      student,
			"confidence":   result.Confidence,
		})
	}
}

type markPayload struct {
	StudentId int64 `json:"studentId" binding:"required"`
}

// Mark records today's attendance for an already-recognized student.
// Marking twice the same day returns the existing record, not an error.
func (ct *Controller) Mark(c *gin.Context) {
	var payload markPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "studentId is required"})
		return
	}

	result, err := ct.engine.MarkAttendance(payload.StudentId)
	if errors.Is(err, recognition.ErrStudentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error marking attendance"})
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Attendance already marked for today",
			"data":    result.Record,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": result.Record})
}

// Today lists every attendance record for the current local day.
func (ct *Controller) Today(c *gin.Context) {
	date := time.Now().Format("2006-01-02")

	var records []models.Attendance
	if err := models.DB.Where("date = ?", date).Order("check_in_time asc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching today's attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// SearchStudent looks a student up by roll number or phone number, for
// the attendance desk UI.
func (ct *Controller) SearchStudent(c *gin.Context) {
	rollNo := c.Query("rollNo")
	phoneNumber := c.Query("phoneNumber")

	if rollNo == "" && phoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide either roll number or phone number",
		})
		return
	}

	query := models.DB
	if rollNo != "" {
		query = query.Where("roll_no = ?", rollNo)
	}
	if phoneNumber != "" {
		query = query.Where("phone_number = ?", phoneNumber)
	}

	var student models.Student
	err := query.First(&student).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": student})
}
