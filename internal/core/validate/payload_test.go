package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApproved(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		received string
	}{
		{name: "合法负载", raw: `{"solanaPublicKey":"test-public-key"}`, want: "test-public-key"},
		{name: "额外字段被忽略", raw: `{"solanaPublicKey":"k","extra":1}`, want: "k"},
		{name: "空字符串形状合法", raw: `{"solanaPublicKey":""}`, want: ""},
		{name: "缺少字段", raw: `{"foo": "bar"}`, received: `{"foo":"bar"}`},
		{name: "类型错误", raw: `{"solanaPublicKey":42}`, received: `{"solanaPublicKey":42}`},
		{name: "null", raw: `null`, received: `null`},
		{name: "数组", raw: `["k"]`, received: `["k"]`},
		{name: "缺失负载", raw: ``, received: `undefined`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseApproved(json.RawMessage(tt.raw))
			if tt.received == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, *p.SolanaPublicKey)
				return
			}
			var mismatch *MismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, ApprovedShape, mismatch.Expected)
			assert.Equal(t, tt.received, mismatch.Received)
			assert.Equal(t, "Expected { solanaPublicKey: string } but received "+tt.received, mismatch.Error())
		})
	}
}

func TestParseTransactionSignatureReply(t *testing.T) {
	p, err := ParseTransactionSignatureReply(json.RawMessage(`{"signedB58Transactions":["a","b"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, p.SignedB58Transactions)

	p, err = ParseTransactionSignatureReply(json.RawMessage(`{"signedB58Transactions":[]}`))
	require.NoError(t, err)
	assert.Empty(t, p.SignedB58Transactions)

	for _, raw := range []string{`{}`, `{"signedB58Transactions":"a"}`, `{"signedB58Transactions":[1]}`, `{"signedB58Transactions":null}`} {
		_, err := ParseTransactionSignatureReply(json.RawMessage(raw))
		var mismatch *MismatchError
		assert.True(t, errors.As(err, &mismatch), raw)
	}
}

func TestParseMessageSignatureReply(t *testing.T) {
	p, err := ParseMessageSignatureReply(json.RawMessage(`{"decodedSignature":"1,2,3"}`))
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", *p.DecodedSignature)

	_, err = ParseMessageSignatureReply(json.RawMessage(`{"decodedSignature":[1,2,3]}`))
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, MessageSignatureReplyShape, mismatch.Expected)
}

func TestDescribeCompacts(t *testing.T) {
	assert.Equal(t, `{"a":1}`, Describe(json.RawMessage("{ \"a\" : 1 }\n")))
	assert.Equal(t, "undefined", Describe(nil))
}
