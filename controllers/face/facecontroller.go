package face

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

type Controller struct {
	engine *recognition.Engine
}

func NewController(engine *recognition.Engine) *Controller {
	return &Controller{engine: engine}
}

type enrollPayload struct {
	ImageData string `json:"imageData" binding:"required"`
}

// RegisterFace stores one more face sample for a student. Multiple
// captures per student are expected; every angle improves the centroid.
func (ct *Controller) RegisterFace(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid student id"})
		return
	}

	var payload enrollPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image data is required"})
		return
	}

	encodingID, err := ct.engine.Enroll(studentID, payload.ImageData)
	switch {
	case errors.Is(err, recognition.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
	case errors.Is(err, recognition.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image data is malformed"})
	case errors.Is(err, recognition.ErrNoFaceDetected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "No clear face detected. Please try again with good lighting and a frontal face.",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding face encoding"})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Face encoding added successfully",
			"data": gin.H{
				"encodingId": encodingID,
				"studentId":  studentID,
			},
		})
	}
}

// ListFaceEncodings returns the student's stored samples, newest first.
// Vectors are not exposed, only ids and timestamps.
func (ct *Controller) ListFaceEncodings(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid student id"})
		return
	}

	enrollments, err := ct.engine.ListEnrollments(studentID)
	if errors.Is(err, recognition.ErrStudentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching face encodings"})
		return
	}

	data := make([]gin.H, 0, len(enrollments))
	for _, enc := range enrollments {
		data = append(data, gin.H{
			"encodingId": enc.ID,
			"created_at": enc.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
