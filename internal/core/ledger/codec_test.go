package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/weisyn/wallet-adapter/pkg/types"
)

func TestEncodePopulate(t *testing.T) {
	codec := NewCodec()
	tx := &types.Transaction{
		Message:    []byte("transfer 1 SOL"),
		Signatures: [][]byte{{1, 2, 3}, {4, 5}},
	}

	encoded, err := codec.Encode(tx)
	require.NoError(t, err)

	decoded, err := codec.Populate(encoded)
	require.NoError(t, err)
	assert.Equal(t, tx.Message, decoded.Message)
	assert.Equal(t, tx.Signatures, decoded.Signatures)
	assert.True(t, decoded.IsSigned())
}

func TestPopulateSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, fieldMessage, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("msg"))

	tx, err := NewCodec().Populate(b)
	require.NoError(t, err)
	assert.Equal(t, []byte("msg"), tx.Message)
	assert.False(t, tx.IsSigned())
}

func TestPopulateErrors(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Populate(nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = codec.Populate([]byte{0x0a, 0x05, 'a'})
	assert.Error(t, err, "长度前缀越界")
}

func TestSerializeMessage(t *testing.T) {
	codec := NewCodec()
	tx := &types.Transaction{Message: []byte{9, 8, 7}}

	msg, err := codec.SerializeMessage(tx)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, msg)

	msg[0] = 0
	assert.Equal(t, byte(9), tx.Message[0], "返回副本")

	_, err = codec.SerializeMessage(&types.Transaction{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = codec.Encode(nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestBase58(t *testing.T) {
	s := EncodeB58([]byte{0, 0, 1, 2})
	b, err := DecodeB58(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 2}, b)

	_, err = DecodeB58("0OIl")
	assert.ErrorIs(t, err, ErrInvalidBase58)
	_, err = DecodeB58("")
	assert.ErrorIs(t, err, ErrInvalidBase58)
}
