package popup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageWireFormat(t *testing.T) {
	msg, err := NewMessage(EventMessageSignatureNeeded, map[string]string{"decodedMessage": "hi"})
	require.NoError(t, err)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"MESSAGE_SIGNATURE_NEEDED","payload":{"decodedMessage":"hi"}}`, string(raw))
}

func TestNewMessageWithoutPayload(t *testing.T) {
	msg, err := NewMessage(EventPopupClosed, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"POPUP_CLOSED"}`, string(raw))
}
