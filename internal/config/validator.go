package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"

	"github.com/weisyn/wallet-adapter/pkg/interfaces/infrastructure/storage"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

var fieldValidator = validator.New()

// ValidationError 配置验证错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config [%s]: %s", e.Field, e.Message)
}

// ValidateAppConfig 校验用户配置中出现的字段
//
// 只检查配置文件里显式给出的值；缺省字段由各领域配置包填充默认值，无需校验。
func ValidateAppConfig(appConfig *types.AppConfig) error {
	if appConfig == nil {
		return nil
	}
	var errs []error

	if a := appConfig.Adapter; a != nil {
		if a.AuthorityOrigin != nil {
			if err := validateOrigin(*a.AuthorityOrigin, "http", "https"); err != nil {
				errs = append(errs, &ValidationError{Field: "adapter.authority_origin", Message: err.Error()})
			}
		}
		if a.RelayURL != nil {
			if err := validateOrigin(*a.RelayURL, "ws", "wss"); err != nil {
				errs = append(errs, &ValidationError{Field: "adapter.relay_url", Message: err.Error()})
			}
		}
		for field, v := range map[string]*int{
			"adapter.min_popup_height_px": a.MinPopupHeightPx,
			"adapter.max_popup_width_px":  a.MaxPopupWidthPx,
			"adapter.viewport_width_px":   a.ViewportWidthPx,
			"adapter.viewport_height_px":  a.ViewportHeightPx,
		} {
			if v != nil && *v <= 0 {
				errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("must be positive, got %d", *v)})
			}
		}
		if a.OperationTimeout != nil {
			if d, err := time.ParseDuration(*a.OperationTimeout); err != nil || d < 0 {
				errs = append(errs, &ValidationError{Field: "adapter.operation_timeout", Message: fmt.Sprintf("expected a non-negative duration like \"5m\", got %q", *a.OperationTimeout)})
			}
		}
		if a.DialTimeout != nil {
			if d, err := time.ParseDuration(*a.DialTimeout); err != nil || d <= 0 {
				errs = append(errs, &ValidationError{Field: "adapter.dial_timeout", Message: fmt.Sprintf("expected a positive duration like \"30s\", got %q", *a.DialTimeout)})
			}
		}
	}

	if s := appConfig.Storage; s != nil && s.Backend != nil {
		switch storage.Backend(strings.ToLower(*s.Backend)) {
		case storage.BackendBadger, storage.BackendFile, storage.BackendMemory, storage.BackendRedis:
		default:
			errs = append(errs, &ValidationError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q (badger, file, memory, redis)", *s.Backend)})
		}
	}

	if l := appConfig.Log; l != nil && l.Level != nil {
		if _, err := zapcore.ParseLevel(*l.Level); err != nil {
			errs = append(errs, &ValidationError{Field: "log.level", Message: err.Error()})
		}
	}

	if m := appConfig.Metrics; m != nil && m.ListenAddr != nil && *m.ListenAddr != "" {
		if err := fieldValidator.Var(*m.ListenAddr, "hostname_port"); err != nil {
			errs = append(errs, &ValidationError{Field: "metrics.listen_addr", Message: fmt.Sprintf("expected host:port, got %q", *m.ListenAddr)})
		}
	}

	return errors.Join(errs...)
}

func validateOrigin(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	for _, s := range schemes {
		if u.Scheme == s {
			if u.Host == "" {
				return fmt.Errorf("missing host in %q", raw)
			}
			return nil
		}
	}
	return fmt.Errorf("scheme of %q must be one of %v", raw, schemes)
}
