package adapter

import "time"

// 适配器默认配置值
const (
	defaultName            = "Fractal"
	defaultAuthorityOrigin = "https://fractal.is"

	// defaultMinPopupHeightPx 同时也是弹窗的默认高度
	defaultMinPopupHeightPx = 700
	defaultMaxPopupWidthPx  = 850

	// 无法获知调用方屏幕时按 1080p 估算
	defaultViewportWidthPx  = 1920
	defaultViewportHeightPx = 1080

	// defaultOperationTimeout 0 表示不限时，与浏览器版本行为一致
	defaultOperationTimeout = time.Duration(0)
	defaultDialTimeout      = 30 * time.Second
)
