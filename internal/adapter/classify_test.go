package adapter

import (
	"errors"
	"testing"

	"github.com/damianoneill/net/v2/netconf/common"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOKReply(t *testing.T) {
	outcome := Classify(&common.RPCReply{Data: "<ok/>"}, nil)
	assert.Equal(t, KindOK, outcome.Kind)
}

func TestClassifyDataReply(t *testing.T) {
	outcome := Classify(&common.RPCReply{Data: "<data>stuff</data>"}, nil)
	assert.Equal(t, KindData, outcome.Kind)
	assert.Equal(t, "<data>stuff</data>", outcome.Data)
}

func TestClassifyEmptyReplyIsError(t *testing.T) {
	outcome := Classify(&common.RPCReply{}, nil)
	assert.Equal(t, KindError, outcome.Kind)
	assert.Equal(t, "No data from reply received", outcome.Message)
}

func TestClassifyNilReplyIsError(t *testing.T) {
	outcome := Classify(nil, nil)
	assert.Equal(t, KindError, outcome.Kind)
}

func TestClassifyRPCErrorPopulatesFields(t *testing.T) {
	rpcErr := &common.RPCError{
		Type:     "application",
		Tag:      "invalid-value",
		Severity: "error",
		Message:  "bad",
		Info:     `<bad-element>foo</bad-element>`,
	}

	outcome := Classify(nil, rpcErr)

	assert.Equal(t, KindError, outcome.Kind)
	assert.NotNil(t, outcome.Err)
	assert.Equal(t, "foo", outcome.BadElement)
}

func TestClassifyTransportErrorIsMessage(t *testing.T) {
	outcome := Classify(nil, errors.New("connection reset"))
	assert.Equal(t, KindError, outcome.Kind)
	assert.Equal(t, "connection reset", outcome.Message)
}
