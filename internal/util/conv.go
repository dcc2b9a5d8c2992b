package util

import (
	"strconv"
	"strings"
)

// ParseOrder 解析排序值，空串或解析失败时返回 0（创建时的默认位置）
func ParseOrder(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseOptionalOrder 更新场景下的宽松合并：空串或无法解析的值视为"未提供"，
// 返回 nil 表示保持原值不变，而不是报错。
func ParseOptionalOrder(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &n
}

// NormalizeOptional 去掉首尾空白后若为空则视为"缺省"，存 NULL 而非空字符串。
func NormalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
