package adapter

import (
	"testing"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/netconfd/netconfd/netconf/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRecvDelegatesToSession(t *testing.T) {
	mockSession := &mocks.OpSession{}
	reply := &common.RPCReply{Data: "<ok/>"}
	mockSession.On("Execute", BuildGet("")).Return(reply, nil)

	a := New(mockSession)
	got, err := a.SendRecv(BuildGet(""))

	require.NoError(t, err)
	assert.Same(t, reply, got)
	mockSession.AssertExpectations(t)
}

func TestCloseDelegatesToSession(t *testing.T) {
	mockSession := &mocks.OpSession{}
	mockSession.On("Close").Return()

	New(mockSession).Close()

	mockSession.AssertExpectations(t)
}
