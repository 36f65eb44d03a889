package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	creditController *controllers.CreditController,
	gradeController *controllers.GradeController,
	scheduleController *controllers.ScheduleController,
	certificateController *controllers.CertificateController,
	teacherController *controllers.TeacherController,
	updateRequestController *controllers.UpdateRequestController,
	calendarController *controllers.CalendarController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Auth and account routes ---
	v1.POST("/adminLogin", authController.AdminLogin)
	v1.POST("/studentLogin", authController.StudentLogin)
	v1.POST("/teacherLogin", authController.TeacherLogin)
	v1.PUT("/updateStudentPassword", authController.UpdateStudentPassword)
	v1.PUT("/updateTeacherPassword", authController.UpdateTeacherPassword)

	// --- Student routes ---
	v1.POST("/registerStudent", studentController.RegisterStudent)
	v1.GET("/getStudent/:id", studentController.GetStudent)
	v1.GET("/getAllStudents", studentController.GetAllStudents)
	v1.DELETE("/deleteStudent/:id", studentController.DeleteStudent)
	v1.GET("/getStudentSchedules/:id", studentController.GetStudentSchedules)

	// --- Course routes ---
	v1.GET("/getAllCourses", courseController.GetAllCourses)
	v1.POST("/addCourse", courseController.AddCourse)
	v1.GET("/getCourse/:id", courseController.GetCourse)
	v1.PUT("/updateCourse/:id", courseController.UpdateCourse)
	v1.DELETE("/deleteCourse/:id", courseController.DeleteCourse)

	// --- Credit routes ---
	v1.POST("/addCredit", creditController.AddCredit)
	v1.GET("/getStudentCredits/:id", creditController.GetStudentCredits)
	v1.GET("/getAllCredits", creditController.GetAllCredits)
	v1.PUT("/updateCredit/:id", creditController.UpdateCredit)
	v1.DELETE("/deleteCredit/:id", creditController.DeleteCredit)

	// --- Grade routes ---
	v1.GET("/getAllGrades", gradeController.GetAllGrades)
	v1.POST("/addGrade", gradeController.AddGrade)
	v1.PUT("/updateGrade/:id", gradeController.UpdateGrade)
	v1.DELETE("/deleteGrade/:id", gradeController.DeleteGrade)
	v1.GET("/getStudentGrades/:id", gradeController.GetStudentGrades)

	// --- Schedule routes ---
	v1.GET("/getAllSchedules", scheduleController.GetAllSchedules)
	v1.POST("/addSchedule", scheduleController.AddSchedule)
	v1.PUT("/updateSchedule/:id", scheduleController.UpdateSchedule)
	v1.DELETE("/deleteSchedule/:id", scheduleController.DeleteSchedule)

	// --- Certificate routes ---
	v1.POST("/uploadCertificate", certificateController.UploadCertificate)
	v1.GET("/getAllCertificates", certificateController.GetAllCertificates)
	v1.GET("/getCertificate/:id", certificateController.GetCertificate)
	v1.GET("/getStudentCertificates/:id", certificateController.GetStudentCertificates)
	v1.PUT("/updateCertificate/:id", certificateController.UpdateCertificate)
	v1.DELETE("/deleteCertificate/:id", certificateController.DeleteCertificate)

	// Certificate type management
	v1.GET("/getAllCertificateTypes", certificateController.GetAllCertificateTypes)
	v1.POST("/addCertificateType", certificateController.AddCertificateType)
	v1.PUT("/updateCertificateType/:id", certificateController.UpdateCertificateType)
	v1.DELETE("/deleteCertificateType/:id", certificateController.DeleteCertificateType)
	v1.GET("/getCertificatesByType/:typeId", certificateController.GetCertificatesByType)
	v1.PUT("/updateCertificateTypeAssignment/:certificateId/:typeId", certificateController.UpdateCertificateTypeAssignment)

	// Certificate analysis
	v1.GET("/getCertificateStatistics/:id", certificateController.GetCertificateStatistics)
	v1.GET("/getCertificateRecommendations/:id", certificateController.GetCertificateRecommendations)

	// --- Teacher routes ---
	v1.GET("/getTeacherProfile/:teacherId", teacherController.GetTeacherProfile)
	v1.GET("/getTeacherCourses/:teacherId", teacherController.GetTeacherCourses)
	v1.GET("/getTeacherGrades/:teacherId", teacherController.GetTeacherGrades)
	v1.POST("/addTeacherGrade", teacherController.AddTeacherGrade)

	// --- Personal info update requests ---
	v1.POST("/submitUpdateRequest", updateRequestController.SubmitUpdateRequest)
	v1.GET("/getPendingUpdateRequest/:id", updateRequestController.GetPendingUpdateRequest)
	v1.GET("/getAllUpdateRequests", updateRequestController.GetAllUpdateRequests)
	v1.POST("/reviewUpdateRequest", updateRequestController.ReviewUpdateRequest)

	// --- Academic calendar routes ---
	v1.GET("/getAllCalendarEvents", calendarController.GetAllCalendarEvents)
	v1.POST("/addCalendarEvent", calendarController.AddCalendarEvent)
	v1.PUT("/updateCalendarEvent/:id", calendarController.UpdateCalendarEvent)
	v1.DELETE("/deleteCalendarEvent/:id", calendarController.DeleteCalendarEvent)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
