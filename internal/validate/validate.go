// Package validate 纯校验函数，无错误路径
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// 尼日利亚手机号：+234 或 0 开头，第二位 7/8/9，第三位 0/1，后接 8 位
	phoneRe = regexp.MustCompile(`^(\+234|0)[789][01]\d{8}$`)
)

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone 匹配前先去掉所有空白
func Phone(s string) bool {
	s = strings.Join(strings.Fields(s), "")
	return phoneRe.MatchString(s)
}
