package types

// AppConfig 钱包适配器的用户配置（JSON 配置文件的根结构）
//
// 所有字段均为指针：只有配置文件中实际出现的字段才会覆盖默认值，
// 默认值由 internal/config 下各领域配置包负责填充。
type AppConfig struct {
	Adapter *UserAdapterConfig `json:"adapter,omitempty"`
	Storage *UserStorageConfig `json:"storage,omitempty"`
	Log     *UserLogConfig     `json:"log,omitempty"`
	Event   *UserEventConfig   `json:"event,omitempty"`
	Metrics *UserMetricsConfig `json:"metrics,omitempty"`
}

// UserAdapterConfig 适配器配置
type UserAdapterConfig struct {
	Name             *string `json:"name,omitempty"`              // 钱包展示名称
	AuthorityOrigin  *string `json:"authority_origin,omitempty"`  // 审批页面所在源
	RelayURL         *string `json:"relay_url,omitempty"`         // 弹窗中继（websocket）基地址
	MinPopupHeightPx *int    `json:"min_popup_height_px,omitempty"`
	MaxPopupWidthPx  *int    `json:"max_popup_width_px,omitempty"`
	ViewportWidthPx  *int    `json:"viewport_width_px,omitempty"`
	ViewportHeightPx *int    `json:"viewport_height_px,omitempty"`
	OperationTimeout *string `json:"operation_timeout,omitempty"` // 单次操作超时，如 "5m"；为空表示不限
	DialTimeout      *string `json:"dial_timeout,omitempty"`      // 中继拨号超时
}

// UserStorageConfig 身份缓存存储配置
type UserStorageConfig struct {
	Backend       *string `json:"backend,omitempty"`   // badger | file | memory | redis
	DataRoot      *string `json:"data_root,omitempty"` // badger / file 数据目录
	RedisAddr     *string `json:"redis_addr,omitempty"`
	RedisPassword *string `json:"redis_password,omitempty"`
	RedisDB       *int    `json:"redis_db,omitempty"`
	KeyPrefix     *string `json:"key_prefix,omitempty"`
}

// UserLogConfig 日志配置
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`
	FilePath  *string `json:"file_path,omitempty"`
	ToConsole *bool   `json:"to_console,omitempty"`
}

// UserEventConfig 事件总线配置
type UserEventConfig struct {
	Enabled *bool `json:"enabled,omitempty"`
}

// UserMetricsConfig 指标配置
type UserMetricsConfig struct {
	Enabled    *bool   `json:"enabled,omitempty"`
	Namespace  *string `json:"namespace,omitempty"`
	ListenAddr *string `json:"listen_addr,omitempty"` // 如 "127.0.0.1:9464"
}
