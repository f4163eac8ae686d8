// Package nonce 生成单次操作的关联令牌
//
// nonce 把一次弹窗页面加载与一个进行中的操作绑定起来：
// 它出现在弹窗 URL 中，也用于拨号中继通道。
package nonce

import "github.com/google/uuid"

// Generator nonce 生成器
type Generator interface {
	New() string
}

// UUIDGenerator 生成 UUID v4 字符串
type UUIDGenerator struct{}

// New 实现 Generator
func (UUIDGenerator) New() string {
	return uuid.NewString()
}

// Fixed 始终返回同一个值，测试用
type Fixed string

// New 实现 Generator
func (f Fixed) New() string {
	return string(f)
}

// Sequence 依次返回预设值，用尽后回落到 UUID
type Sequence struct {
	values []string
	next   int
}

// NewSequence 创建顺序生成器
func NewSequence(values ...string) *Sequence {
	return &Sequence{values: values}
}

// New 实现 Generator
func (s *Sequence) New() string {
	if s.next < len(s.values) {
		v := s.values[s.next]
		s.next++
		return v
	}
	return uuid.NewString()
}
