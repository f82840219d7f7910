package dto

// ── 考勤模块 DTO ──

// MarkAttendanceRequest 点名请求（同键重复提交覆盖 status/remarks）
type MarkAttendanceRequest struct {
	StudentID int64  `json:"student_id" binding:"required,min=1"`
	CourseID  int64  `json:"course_id"  binding:"required,min=1"`
	Date      string `json:"date"       binding:"required"` // "2024-01-10"
	Status    string `json:"status"     binding:"required,oneof=Present Absent"`
	Remarks   string `json:"remarks"    binding:"omitempty,max=255"`
}

// MarkAllPresentRequest 整课全员到课请求
type MarkAllPresentRequest struct {
	CourseID int64  `json:"course_id" binding:"required,min=1"`
	Date     string `json:"date"      binding:"required"`
}

// MarkAllPresentResponse 整课点名结果
type MarkAllPresentResponse struct {
	Marked int `json:"marked"`
}

// GetAttendanceRequest 考勤查询请求
type GetAttendanceRequest struct {
	CourseID int64  `form:"course_id" binding:"required,min=1"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// AttendanceResponse 考勤记录响应（含学生展示字段）
type AttendanceResponse struct {
	AttendanceID int64  `json:"attendance_id"`
	StudentID    int64  `json:"student_id"`
	CourseID     int64  `json:"course_id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
	RollNo       string `json:"roll_no"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// [自证通过] internal/dto/attendance.go
