package handshake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/weisyn/wallet-adapter/internal/core/validate"
	popupInterface "github.com/weisyn/wallet-adapter/pkg/interfaces/popup"
	"github.com/weisyn/wallet-adapter/pkg/types"
)

const (
	malformedSignMessagePrefix = "Malformed payload when signing message. "
	messageNotApprovedMessage  = "The user did not approve the message"
)

var (
	// ErrEmptyMessage 待签名消息为空
	ErrEmptyMessage = errors.New("message to sign is empty")
	// ErrMessageNotUTF8 待签名消息不是合法的 UTF-8 文本
	ErrMessageNotUTF8 = errors.New("message to sign is not valid UTF-8")
)

// messageSignatureNeeded MESSAGE_SIGNATURE_NEEDED 负载
type messageSignatureNeeded struct {
	DecodedMessage string `json:"decodedMessage"`
}

// signMessageFlow 消息签名流程
type signMessageFlow struct {
	e         *Engine
	decoded   string
	requested bool
}

func newSignMessageFlow(e *Engine, message []byte) (*signMessageFlow, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}
	if !utf8.Valid(message) {
		return nil, ErrMessageNotUTF8
	}
	return &signMessageFlow{e: e, decoded: string(message)}, nil
}

func (f *signMessageFlow) kind() opKind {
	return opSignMessage
}

func (f *signMessageFlow) openConfig(nonce string) popupInterface.OpenConfig {
	height, width := popupSize(f.e.config)
	return popupInterface.OpenConfig{
		Nonce:    nonce,
		URL:      f.e.config.SignMessageURL(nonce),
		HeightPx: height,
		WidthPx:  width,
	}
}

func (f *signMessageFlow) handle(ctx context.Context, op *operation, msg popupInterface.Message) ([]byte, bool, error) {
	switch msg.Event {
	case popupInterface.EventAuthLoaded:
		if f.requested {
			ignore(op, msg)
			return nil, false, nil
		}
		payload := messageSignatureNeeded{DecodedMessage: f.decoded}
		if err := op.send(ctx, popupInterface.EventMessageSignatureNeeded, payload); err != nil {
			return nil, false, fmt.Errorf("send signature request: %w", err)
		}
		f.requested = true
		return nil, false, nil

	case popupInterface.EventMessageSignatureNeededReply:
		reply, err := validate.ParseMessageSignatureReply(msg.Payload)
		if err != nil {
			return nil, false, types.NewSignMessageError(malformedSignMessagePrefix+err.Error(), err)
		}
		signature, err := ParseSignature(*reply.DecodedSignature)
		if err != nil {
			return nil, false, err
		}
		return signature, true, nil

	case popupInterface.EventTransactionDenied, popupInterface.EventPopupClosed:
		return nil, false, types.NewSignMessageError(messageNotApprovedMessage, nil)

	default:
		ignore(op, msg)
		return nil, false, nil
	}
}

// ParseSignature 解析逗号分隔的十进制字节列表，如 "12,0,255"
func ParseSignature(s string) ([]byte, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("signature is empty")
	}
	parts := strings.Split(s, ",")
	out := make([]byte, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid signature byte %d %q: %w", i, part, err)
		}
		out[i] = byte(v)
	}
	return out, nil
}
