package dto

// AdminLoginRequest carries the hardcoded admin credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse confirms a successful admin login
type AdminLoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
}

// StudentLoginRequest authenticates a student by account and password
type StudentLoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentLoginResponse identifies the logged-in student
type StudentLoginResponse struct {
	Message     string `json:"message"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
}

// TeacherLoginRequest authenticates a teacher by staff number and password
type TeacherLoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TeacherLoginResponse identifies the logged-in teacher
type TeacherLoginResponse struct {
	Message   string `json:"message"`
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// ChangeStudentPasswordRequest verifies the old password before overwriting
type ChangeStudentPasswordRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangeTeacherPasswordRequest verifies the old password before overwriting
type ChangeTeacherPasswordRequest struct {
	TeacherID   string `json:"teacher_id" binding:"required"`
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
