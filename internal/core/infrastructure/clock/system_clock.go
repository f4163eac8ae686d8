// Package clock 提供 Clock 接口的系统时钟与可控时钟实现
package clock

import (
	"time"

	infraClock "github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/clock"
)

// SystemClock 使用系统真实时间
type SystemClock struct{}

var _ infraClock.Clock = SystemClock{}

func NewSystemClock() infraClock.Clock { return SystemClock{} }

func (SystemClock) Now() time.Time                  { return time.Now() }
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }
