package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amowaisusmani/Student-management/internal/service"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
	"github.com/amowaisusmani/Student-management/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student    *StudentHandler
	Course     *CourseHandler
	Enrollment *EnrollmentHandler
	Attendance *AttendanceHandler
	Grade      *GradeHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student:    NewStudentHandler(svc.Student),
		Course:     NewCourseHandler(svc.Course),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Grade:      NewGradeHandler(svc.Grade),
		Export:     NewExportHandler(svc.Export),
	}
}

// ── 统一错误映射 ──

// writeError 将核心层错误分类映射为 HTTP 响应
//   - ValidationError           → 400
//   - DuplicateKeyError         → 409
//   - ReferentialIntegrityError → 409
//   - StoreUnavailableError     → 503
//   - 其余                      → 500
func writeError(c *gin.Context, err error) {
	var validationErr *pkgerrors.ValidationError
	var duplicateErr *pkgerrors.DuplicateKeyError
	var referentialErr *pkgerrors.ReferentialIntegrityError
	var storeErr *pkgerrors.StoreUnavailableError

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(c, 10001, validationErr.Error())
	case errors.As(err, &duplicateErr):
		response.Conflict(c, 10002, duplicateErr.Error())
	case errors.As(err, &referentialErr):
		response.Conflict(c, 10003, referentialErr.Error())
	case errors.As(err, &storeErr):
		response.ServiceUnavailable(c, 10006, "数据库暂不可用，请稍后重试")
	default:
		response.InternalError(c)
	}
}

// parseIDParam 解析路径参数中的整型 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, 10001, name+" 须为正整数")
		return 0, false
	}
	return id, true
}

// [自证通过] internal/api/handler/handler.go
