package types

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// PublicKeyLength 钱包公钥长度（ed25519，32字节）
const PublicKeyLength = 32

// PublicKey 钱包公钥
//
// 线上格式为 Base58 字符串；String() 返回的规范形式即身份缓存中保存的值。
type PublicKey [PublicKeyLength]byte

// ParsePublicKey 从 Base58 字符串解析公钥
func ParsePublicKey(s string) (*PublicKey, error) {
	if s == "" {
		return nil, fmt.Errorf("invalid public key input: empty string")
	}
	// base58.Decode 遇到非法字符时返回空切片
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, fmt.Errorf("invalid public key input: %q is not base58", s)
	}
	if len(decoded) != PublicKeyLength {
		return nil, fmt.Errorf("invalid public key input: expected %d bytes, got %d", PublicKeyLength, len(decoded))
	}
	var pk PublicKey
	copy(pk[:], decoded)
	return &pk, nil
}

// PublicKeyFromBytes 从原始字节构造公钥
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLength {
		return nil, fmt.Errorf("invalid public key input: expected %d bytes, got %d", PublicKeyLength, len(b))
	}
	var pk PublicKey
	copy(pk[:], b)
	return &pk, nil
}

// String 返回 Base58 规范形式
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// Bytes 返回公钥字节副本
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, pk[:])
	return out
}

// Equals 比较两个公钥
func (pk PublicKey) Equals(other PublicKey) bool {
	return bytes.Equal(pk[:], other[:])
}
