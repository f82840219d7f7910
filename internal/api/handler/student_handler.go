package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amowaisusmani/Student-management/internal/dto"
	"github.com/amowaisusmani/Student-management/internal/service"
	"github.com/amowaisusmani/Student-management/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// SearchStudents 搜索学生（分页）
// GET /api/v1/students?q=&page=&page_size=
func (h *StudentHandler) SearchStudents(c *gin.Context) {
	var req dto.SearchStudentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	page := req.GetPage()
	pageSize := req.GetPageSize()

	students, total, err := h.studentSvc.Search(c.Request.Context(), req.Query, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OKPage(c, students, total, page, pageSize)
}

// CreateStudent 创建学生
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, student)
}

// UpdateStudent 整行更新学生
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	affected, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, dto.AffectedResponse{Affected: affected})
}

// DeleteStudent 删除学生
// DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affected, err := h.studentSvc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, dto.AffectedResponse{Affected: affected})
}

// [自证通过] internal/api/handler/student_handler.go
