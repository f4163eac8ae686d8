package handshake

import adapterconfig "github.com/weisyn/wallet-adapter/internal/config/adapter"

// popupSize 按视口计算建议的签名弹窗尺寸
//
//	height = max(最小高度, ⌊0.8 × 视口高⌋)
//	width  = min(最大宽度, ⌊0.8 × 视口宽⌋)
func popupSize(cfg *adapterconfig.Config) (heightPx, widthPx int) {
	vw, vh := cfg.GetViewport()
	heightPx = max(cfg.GetMinPopupHeightPx(), scaled(vh))
	widthPx = min(cfg.GetMaxPopupWidthPx(), scaled(vw))
	return heightPx, widthPx
}

func scaled(px int) int {
	if px <= 0 {
		return 0
	}
	return px * 4 / 5
}
