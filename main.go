package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mahi-singh03/DEMO-APP/config"
	attendancectl "github.com/Mahi-singh03/DEMO-APP/controllers/attendance"
	"github.com/Mahi-singh03/DEMO-APP/controllers/auth"
	facectl "github.com/Mahi-singh03/DEMO-APP/controllers/face"
	"github.com/Mahi-singh03/DEMO-APP/jobs"
	"github.com/Mahi-singh03/DEMO-APP/middlewares"
	"github.com/Mahi-singh03/DEMO-APP/models"
	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

func main() {
	models.ConnectDatabase()

	cfg := config.Recognition()
	engine := recognition.NewEngine(
		cfg,
		recognition.NewHashEncoder(cfg.Dim),
		models.NewEncodingStore(models.DB),
		models.NewAttendanceStore(models.DB),
		models.NewStudentDirectory(models.DB),
	)

	faceController := facectl.NewController(engine)
	attendanceController := attendancectl.NewController(engine)

	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)

		api.POST("/attendance/recognize", attendanceController.Recognize)
		api.POST("/attendance/mark", attendanceController.Mark)
		api.GET("/attendance/today", attendanceController.Today)

		api.GET("/students/search", attendanceController.SearchStudent)

		protected := api.Group("/students")
		protected.Use(middlewares.Auth())
		{
			protected.POST("/:id/face-encodings", faceController.RegisterFace)
			protected.GET("/:id/face-encodings", faceController.ListFaceEncodings)
		}
	}

	jobs.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
