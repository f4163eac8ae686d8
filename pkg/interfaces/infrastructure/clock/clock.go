// Package clock 定义统一的时间源接口
package clock

import "time"

// Clock 时间源
//
// 引擎用它度量操作耗时；测试中替换为可控实现。
type Clock interface {
	// Now 获取当前时间
	Now() time.Time

	// Since 计算从指定时间到现在的持续时间
	Since(t time.Time) time.Duration
}
