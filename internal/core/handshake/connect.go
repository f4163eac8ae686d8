package handshake

import (
	"context"
	"encoding/json"

	"github.com/weisyn/wallet-adapter/internal/core/validate"
	handshakeInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/handshake"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	malformedConnectPrefix  = "Malformed payload when setting up connection. "
	connectionDeniedMessage = "The user denied the connection."
)

// connectFlow 连接审批流程
type connectFlow struct {
	e *Engine
}

func (f *connectFlow) kind() opKind {
	return opConnect
}

func (f *connectFlow) openConfig(nonce string) popupInterface.OpenConfig {
	return popupInterface.OpenConfig{
		Nonce: nonce,
		URL:   f.e.config.ApproveURL(nonce),
	}
}

func (f *connectFlow) handle(ctx context.Context, op *operation, msg popupInterface.Message) (*handshakeInterface.ConnectResult, bool, error) {
	switch msg.Event {
	case popupInterface.EventApproved:
		return f.approved(ctx, op, msg.Payload)
	case popupInterface.EventDenied, popupInterface.EventPopupClosed:
		return nil, false, types.NewConnectionError(connectionDeniedMessage, nil)
	default:
		ignore(op, msg)
		return nil, false, nil
	}
}

func (f *connectFlow) approved(ctx context.Context, op *operation, payload json.RawMessage) (*handshakeInterface.ConnectResult, bool, error) {
	approved, err := validate.ParseApproved(payload)
	if err != nil {
		return nil, false, types.NewConnectionError(malformedConnectPrefix+err.Error(), err)
	}

	raw := *approved.SolanaPublicKey
	pk, err := f.e.parseKey(raw)
	if err != nil {
		return nil, false, types.NewPublicKeyError(errorMessage(err), err)
	}

	// 持久化失败不影响本次连接，下次 Connect 会重新审批
	if err := f.e.identity.Store(ctx, raw); err != nil {
		op.logger.Warnf("写入身份缓存失败: %v", err)
	}
	op.logger.Infof("用户已批准连接: %s", raw)
	return &handshakeInterface.ConnectResult{PublicKey: pk}, true, nil
}
