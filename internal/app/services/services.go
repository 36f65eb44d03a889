package services

import (
	"github.com/kaiwen/acadhub/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	AuthService          *AuthService
	StudentService       *StudentService
	CourseService        *CourseService
	CreditService        *CreditService
	GradeService         *GradeService
	ScheduleService      *ScheduleService
	CertificateService   *CertificateService
	TeacherService       *TeacherService
	CalendarService      *CalendarService
	UpdateRequestService *UpdateRequestService
}

// NewServices initializes all services over the repository set
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.StudentRepository, repos.TeacherRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.ScheduleRepository),
		CourseService:  NewCourseService(repos.CourseRepository),
		CreditService:  NewCreditService(repos.CreditRepository),
		GradeService: NewGradeService(
			repos.StudentRepository,
			repos.CourseRepository,
			repos.GradeRepository,
			repos.TeacherRepository,
		),
		ScheduleService: NewScheduleService(repos.ScheduleRepository),
		CertificateService: NewCertificateService(
			repos.CertificateRepository,
			repos.CertificateTypeRepository,
			repos.StudentRepository,
		),
		TeacherService:       NewTeacherService(repos.TeacherRepository),
		CalendarService:      NewCalendarService(repos.CalendarRepository),
		UpdateRequestService: NewUpdateRequestService(repos.UpdateRequestRepository, repos.StudentRepository),
	}
}
