package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository         *StudentRepository
	TeacherRepository         *TeacherRepository
	CourseRepository          *CourseRepository
	CreditRepository          *CreditRepository
	GradeRepository           *GradeRepository
	ScheduleRepository        *ScheduleRepository
	CertificateRepository     *CertificateRepository
	CertificateTypeRepository *CertificateTypeRepository
	UpdateRequestRepository   *UpdateRequestRepository
	CalendarRepository        *CalendarRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:         NewStudentRepository(db),
		TeacherRepository:         NewTeacherRepository(db),
		CourseRepository:          NewCourseRepository(db),
		CreditRepository:          NewCreditRepository(db),
		GradeRepository:           NewGradeRepository(db),
		ScheduleRepository:        NewScheduleRepository(db),
		CertificateRepository:     NewCertificateRepository(db),
		CertificateTypeRepository: NewCertificateTypeRepository(db),
		UpdateRequestRepository:   NewUpdateRequestRepository(db),
		CalendarRepository:        NewCalendarRepository(db),
	}
}
