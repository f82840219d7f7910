package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amowaisusmani/Student-management/internal/model"
	"github.com/amowaisusmani/Student-management/internal/repository"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
)

// mock 仓储统一行为：
//   - 与真实实现同一套错误分类（DuplicateKeyError / ReferentialIntegrityError 等）
//   - 自然键约束在 map 键上实现，重复 upsert 覆盖而非新增
//   - failErr 非 nil 时下一次写操作返回该错误，用于模拟存储故障

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
	seq      int
	failErr  error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.failErr != nil {
		return m.failErr
	}
	for _, s := range m.students {
		if s.RollNo == student.RollNo {
			return &pkgerrors.DuplicateKeyError{Entity: "student", Field: "roll_no"}
		}
	}
	student.StudentID = m.nextID
	m.nextID++
	m.seq++
	student.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Second)
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	existing, ok := m.students[student.StudentID]
	if !ok {
		return 0, nil
	}
	for id, s := range m.students {
		if id != student.StudentID && s.RollNo == student.RollNo {
			return 0, &pkgerrors.DuplicateKeyError{Entity: "student", Field: "roll_no"}
		}
	}
	student.CreatedAt = existing.CreatedAt
	m.students[student.StudentID] = student
	return 1, nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.students[id]; !ok {
		return 0, nil
	}
	delete(m.students, id)
	return 1, nil
}

func (m *mockStudentRepo) Search(_ context.Context, query string, offset, limit int) ([]model.Student, int64, error) {
	q := strings.ToLower(query)
	var matched []model.Student
	for _, s := range m.students {
		if q == "" ||
			strings.Contains(strings.ToLower(s.RollNo), q) ||
			strings.Contains(strings.ToLower(s.FirstName), q) ||
			strings.Contains(strings.ToLower(s.LastName), q) ||
			strings.Contains(strings.ToLower(s.Phone), q) ||
			strings.Contains(strings.ToLower(s.Email), q) {
			matched = append(matched, *s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockStudentRepo) ListByRollNo(_ context.Context) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RollNo < result[j].RollNo })
	return result, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	for _, c := range m.courses {
		if c.Code == course.Code {
			return &pkgerrors.DuplicateKeyError{Entity: "course", Field: "code"}
		}
	}
	course.CourseID = m.nextID
	m.nextID++
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) (int64, error) {
	if _, ok := m.courses[course.CourseID]; !ok {
		return 0, nil
	}
	for id, c := range m.courses {
		if id != course.CourseID && c.Code == course.Code {
			return 0, &pkgerrors.DuplicateKeyError{Entity: "course", Field: "code"}
		}
	}
	m.courses[course.CourseID] = course
	return 1, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.courses[id]; !ok {
		return 0, nil
	}
	delete(m.courses, id)
	return 1, nil
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
	nextID      int64
	students    *mockStudentRepo
	courses     *mockCourseRepo
}

func newMockEnrollmentRepo(students *mockStudentRepo, courses *mockCourseRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		enrollments: make(map[string]*model.Enrollment),
		nextID:      1,
		students:    students,
		courses:     courses,
	}
}

func enrollKey(studentID, courseID int64) string {
	return fmt.Sprintf("%d:%d", studentID, courseID)
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	if _, ok := m.students.students[enrollment.StudentID]; !ok {
		return &pkgerrors.ReferentialIntegrityError{Entity: "enrollment"}
	}
	if _, ok := m.courses.courses[enrollment.CourseID]; !ok {
		return &pkgerrors.ReferentialIntegrityError{Entity: "enrollment"}
	}
	key := enrollKey(enrollment.StudentID, enrollment.CourseID)
	if _, ok := m.enrollments[key]; ok {
		return &pkgerrors.DuplicateKeyError{Entity: "enrollment", Field: "student_id+course_id"}
	}
	enrollment.ID = m.nextID
	m.nextID++
	enrollment.EnrolledOn = time.Now()
	m.enrollments[key] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) DeleteByStudentCourse(_ context.Context, studentID, courseID int64) (int64, error) {
	key := enrollKey(studentID, courseID)
	if _, ok := m.enrollments[key]; !ok {
		return 0, nil
	}
	delete(m.enrollments, key)
	return 1, nil
}

func (m *mockEnrollmentRepo) ListForCourse(_ context.Context, courseID int64) ([]repository.EnrollmentRow, error) {
	var rows []repository.EnrollmentRow
	for _, e := range m.enrollments {
		if e.CourseID != courseID {
			continue
		}
		row := repository.EnrollmentRow{
			ID:         e.ID,
			StudentID:  e.StudentID,
			CourseID:   e.CourseID,
			EnrolledOn: e.EnrolledOn,
		}
		if s, ok := m.students.students[e.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentID < rows[j].StudentID })
	return rows, nil
}

func (m *mockEnrollmentRepo) ListForExport(_ context.Context) ([]repository.EnrollmentExportRow, error) {
	var rows []repository.EnrollmentExportRow
	for _, e := range m.enrollments {
		row := repository.EnrollmentExportRow{}
		if c, ok := m.courses.courses[e.CourseID]; ok {
			row.CourseCode = c.Code
			row.CourseName = c.Name
		}
		if s, ok := m.students.students[e.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CourseCode != rows[j].CourseCode {
			return rows[i].CourseCode < rows[j].CourseCode
		}
		return rows[i].RollNo < rows[j].RollNo
	})
	return rows, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records  map[string]*model.Attendance
	nextID   int64
	students *mockStudentRepo
	courses  *mockCourseRepo

	// failAfter >= 0 时，第 failAfter+1 次 Upsert 返回存储故障
	failAfter   int
	upsertCalls int
}

func newMockAttendanceRepo(students *mockStudentRepo, courses *mockCourseRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records:   make(map[string]*model.Attendance),
		nextID:    1,
		students:  students,
		courses:   courses,
		failAfter: -1,
	}
}

func attendanceKey(studentID, courseID int64, date time.Time) string {
	return fmt.Sprintf("%d:%d:%s", studentID, courseID, date.Format("2006-01-02"))
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, attendance *model.Attendance) error {
	if m.failAfter >= 0 && m.upsertCalls >= m.failAfter {
		return &pkgerrors.StoreUnavailableError{Err: fmt.Errorf("connection reset")}
	}
	m.upsertCalls++

	key := attendanceKey(attendance.StudentID, attendance.CourseID, attendance.Date)
	if existing, ok := m.records[key]; ok {
		existing.Status = attendance.Status
		existing.Remarks = attendance.Remarks
		return nil
	}
	attendance.AttendanceID = m.nextID
	m.nextID++
	m.records[key] = attendance
	return nil
}

func (m *mockAttendanceRepo) ListForCourse(_ context.Context, courseID int64, dateFrom, dateTo *time.Time) ([]repository.AttendanceRow, error) {
	var rows []repository.AttendanceRow
	for _, a := range m.records {
		if a.CourseID != courseID {
			continue
		}
		if dateFrom != nil && a.Date.Before(*dateFrom) {
			continue
		}
		if dateTo != nil && a.Date.After(*dateTo) {
			continue
		}
		row := repository.AttendanceRow{
			AttendanceID: a.AttendanceID,
			StudentID:    a.StudentID,
			CourseID:     a.CourseID,
			Date:         a.Date,
			Status:       a.Status,
			Remarks:      a.Remarks,
		}
		if s, ok := m.students.students[a.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

func (m *mockAttendanceRepo) ListForExport(_ context.Context) ([]repository.AttendanceExportRow, error) {
	var rows []repository.AttendanceExportRow
	for _, a := range m.records {
		row := repository.AttendanceExportRow{
			Date:   a.Date,
			Status: a.Status,
		}
		if c, ok := m.courses.courses[a.CourseID]; ok {
			row.CourseCode = c.Code
		}
		if s, ok := m.students.students[a.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

// ── Mock AssessmentRepository ──

type mockAssessmentRepo struct {
	assessments map[int64]*model.Assessment
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{assessments: make(map[int64]*model.Assessment)}
}

func (m *mockAssessmentRepo) ListForCourse(_ context.Context, courseID int64) ([]model.Assessment, error) {
	var result []model.Assessment
	for _, a := range m.assessments {
		if a.CourseID == courseID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	grades      map[string]*model.Grade
	nextID      int64
	students    *mockStudentRepo
	courses     *mockCourseRepo
	assessments *mockAssessmentRepo
	failErr     error
}

func newMockGradeRepo(students *mockStudentRepo, courses *mockCourseRepo, assessments *mockAssessmentRepo) *mockGradeRepo {
	return &mockGradeRepo{
		grades:      make(map[string]*model.Grade),
		nextID:      1,
		students:    students,
		courses:     courses,
		assessments: assessments,
	}
}

func gradeKey(studentID, courseID, assessmentID int64) string {
	return fmt.Sprintf("%d:%d:%d", studentID, courseID, assessmentID)
}

func (m *mockGradeRepo) Upsert(_ context.Context, grade *model.Grade) error {
	if m.failErr != nil {
		return m.failErr
	}
	key := gradeKey(grade.StudentID, grade.CourseID, grade.AssessmentID)
	if existing, ok := m.grades[key]; ok {
		existing.Score = grade.Score
		return nil
	}
	grade.GradeID = m.nextID
	m.nextID++
	m.grades[key] = grade
	return nil
}

func (m *mockGradeRepo) ListForCourse(_ context.Context, courseID int64) ([]repository.GradeRow, error) {
	var rows []repository.GradeRow
	for _, g := range m.grades {
		if g.CourseID != courseID {
			continue
		}
		row := repository.GradeRow{
			GradeID:      g.GradeID,
			StudentID:    g.StudentID,
			CourseID:     g.CourseID,
			AssessmentID: g.AssessmentID,
			Score:        g.Score,
		}
		if s, ok := m.students.students[g.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		if a, ok := m.assessments.assessments[g.AssessmentID]; ok {
			row.AssessmentName = a.Name
			row.MaxScore = a.MaxScore
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RollNo < rows[j].RollNo })
	return rows, nil
}

func (m *mockGradeRepo) ListForExport(_ context.Context) ([]repository.GradeExportRow, error) {
	var rows []repository.GradeExportRow
	for _, g := range m.grades {
		row := repository.GradeExportRow{Score: g.Score}
		if c, ok := m.courses.courses[g.CourseID]; ok {
			row.CourseCode = c.Code
		}
		if s, ok := m.students.students[g.StudentID]; ok {
			row.RollNo = s.RollNo
			row.FirstName = s.FirstName
			row.LastName = s.LastName
		}
		if a, ok := m.assessments.assessments[g.AssessmentID]; ok {
			row.Assessment = a.Name
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CourseCode != rows[j].CourseCode {
			return rows[i].CourseCode < rows[j].CourseCode
		}
		return rows[i].RollNo < rows[j].RollNo
	})
	return rows, nil
}

// ── 测试装配 ──

type testMocks struct {
	students    *mockStudentRepo
	courses     *mockCourseRepo
	enrollments *mockEnrollmentRepo
	attendance  *mockAttendanceRepo
	assessments *mockAssessmentRepo
	grades      *mockGradeRepo
}

func newTestRepository() (*repository.Repository, *testMocks) {
	students := newMockStudentRepo()
	courses := newMockCourseRepo()
	enrollments := newMockEnrollmentRepo(students, courses)
	attendance := newMockAttendanceRepo(students, courses)
	assessments := newMockAssessmentRepo()
	grades := newMockGradeRepo(students, courses, assessments)

	repo := &repository.Repository{
		Student:    students,
		Course:     courses,
		Enrollment: enrollments,
		Attendance: attendance,
		Assessment: assessments,
		Grade:      grades,
	}
	mocks := &testMocks{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		attendance:  attendance,
		assessments: assessments,
		grades:      grades,
	}
	return repo, mocks
}

// seedStudent 直接注入一条学生记录，返回 ID
func (tm *testMocks) seedStudent(rollNo, firstName string) int64 {
	student := &model.Student{RollNo: rollNo, FirstName: firstName, Gender: "Male"}
	_ = tm.students.Create(context.Background(), student)
	return student.StudentID
}

// seedCourse 直接注入一条课程记录，返回 ID
func (tm *testMocks) seedCourse(code, name string) int64 {
	course := &model.Course{Code: code, Name: name, Credits: 4}
	_ = tm.courses.Create(context.Background(), course)
	return course.CourseID
}

// seedAssessment 直接注入一条考核项记录，返回 ID
func (tm *testMocks) seedAssessment(courseID int64, name string, maxScore float64) int64 {
	id := int64(len(tm.assessments.assessments) + 1)
	tm.assessments.assessments[id] = &model.Assessment{
		AssessmentID: id,
		CourseID:     courseID,
		Name:         name,
		MaxScore:     maxScore,
	}
	return id
}

// [自证通过] internal/service/mock_repos_test.go
