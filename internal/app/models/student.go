package models

import "time"

// Student defines the student model based on the 'students' table.
// StudentID doubles as the login account; the password column is
// plaintext.
type Student struct {
	StudentID   string     `json:"student_id" db:"student_id"`
	StudentName string     `json:"student_name" db:"student_name"`
	Class       string     `json:"class" db:"class"`
	Gender      string     `json:"gender" db:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	IDCard      string     `json:"id_card" db:"id_card"`
	PhoneNumber string     `json:"phone_number" db:"phone_number"`
	Address     string     `json:"address" db:"address"`
	Account     string     `json:"account" db:"account"`
	Password    string     `json:"-" db:"password"`
	Major       string     `json:"major" db:"major"`
}
