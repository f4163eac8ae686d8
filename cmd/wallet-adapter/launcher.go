package main

import (
	"context"

	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
)

// consoleLauncher 在终端展示授权页面地址
type consoleLauncher struct {
	printer *Printer
}

func newConsoleLauncher(printer *Printer) *consoleLauncher {
	return &consoleLauncher{printer: printer}
}

// Launch 实现 popup.Launcher
func (l *consoleLauncher) Launch(_ context.Context, cfg popupInterface.OpenConfig) error {
	l.printer.PrintAuthorization(cfg)
	return nil
}
