package popup

import (
	"context"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/log"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// Launcher 负责把授权页面展示给用户
//
// 适配器不渲染任何界面，只把 URL 和建议尺寸交给宿主环境。
type Launcher interface {
	Launch(ctx context.Context, cfg popupInterface.OpenConfig) error
}

// LauncherFunc 函数适配器
type LauncherFunc func(ctx context.Context, cfg popupInterface.OpenConfig) error

// Launch 实现 Launcher
func (f LauncherFunc) Launch(ctx context.Context, cfg popupInterface.OpenConfig) error {
	return f(ctx, cfg)
}

// LogLauncher 仅记录授权页面地址，由用户自行打开
type LogLauncher struct {
	logger log.Logger
}

// NewLogLauncher 创建日志启动器
func NewLogLauncher(logger log.Logger) *LogLauncher {
	return &LogLauncher{logger: logger}
}

// Launch 实现 Launcher
func (l *LogLauncher) Launch(_ context.Context, cfg popupInterface.OpenConfig) error {
	if cfg.HeightPx > 0 || cfg.WidthPx > 0 {
		l.logger.Infof("请在浏览器中打开授权页面: %s (建议尺寸 %dx%d)", cfg.URL, cfg.WidthPx, cfg.HeightPx)
		return nil
	}
	l.logger.Infof("请在浏览器中打开授权页面: %s", cfg.URL)
	return nil
}
