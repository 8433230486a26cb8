// Package mocks provides testify-based mocks for the interfaces exposed by
// github.com/damianoneill/net/v2's client and ops packages, used by unit
// tests across this module. Hand-written rather than generated: the
// upstream library generates its own fakes via golang/mock (go:generate
// mockgen), which can't be invoked here; testify/mock already covers the
// same concern and is a first-class dependency of this module in its own
// right.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/damianoneill/net/v2/netconf/ops"
)

// OpSession is a mock implementation of ops.OpSession (which embeds
// client.Session), driven by testify/mock expectations.
type OpSession struct {
	mock.Mock
}

func (m *OpSession) Execute(req common.Request) (*common.RPCReply, error) {
	args := m.Called(req)
	var reply *common.RPCReply
	if args.Get(0) != nil {
		reply = args.Get(0).(*common.RPCReply)
	}
	return reply, args.Error(1)
}

func (m *OpSession) ExecuteAsync(req common.Request, rchan chan *common.RPCReply) error {
	args := m.Called(req, rchan)
	return args.Error(0)
}

func (m *OpSession) Subscribe(req common.Request, nchan chan *common.Notification) (*common.RPCReply, error) {
	args := m.Called(req, nchan)
	var reply *common.RPCReply
	if args.Get(0) != nil {
		reply = args.Get(0).(*common.RPCReply)
	}
	return reply, args.Error(1)
}

func (m *OpSession) Close() {
	m.Called()
}

func (m *OpSession) ID() uint64 {
	args := m.Called()
	return uint64(args.Int(0))
}

func (m *OpSession) ServerCapabilities() []string {
	args := m.Called()
	if s, ok := args.Get(0).([]string); ok {
		return s
	}
	return nil
}

func (m *OpSession) GetSubtree(filter interface{}, result interface{}) error {
	args := m.Called(filter, result)
	return args.Error(0)
}

func (m *OpSession) GetXpath(xpath string, nslist []ops.Namespace, result interface{}) error {
	args := m.Called(xpath, nslist, result)
	return args.Error(0)
}

func (m *OpSession) GetConfigSubtree(filter interface{}, source string, result interface{}) error {
	args := m.Called(filter, source, result)
	return args.Error(0)
}

func (m *OpSession) GetConfigXpath(xpath string, nslist []ops.Namespace, source string, result interface{}) error {
	args := m.Called(xpath, nslist, source, result)
	return args.Error(0)
}

func (m *OpSession) GetSchemas() ([]ops.Schema, error) {
	args := m.Called()
	var schemas []ops.Schema
	if s, ok := args.Get(0).([]ops.Schema); ok {
		schemas = s
	}
	return schemas, args.Error(1)
}

func (m *OpSession) GetSchema(id, version, format string) (string, error) {
	args := m.Called(id, version, format)
	return args.String(0), args.Error(1)
}

func (m *OpSession) EditConfig(target string, config ops.ConfigOption, options ...ops.EditOption) error {
	args := m.Called(target, config, options)
	return args.Error(0)
}

func (m *OpSession) EditConfigCfg(target string, config interface{}, options ...ops.EditOption) error {
	args := m.Called(target, config, options)
	return args.Error(0)
}

func (m *OpSession) CopyConfig(source, target ops.CfgDsOpt) error {
	args := m.Called(source, target)
	return args.Error(0)
}

func (m *OpSession) DeleteConfig(target ops.CfgDsOpt) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *OpSession) Lock(target string) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *OpSession) Unlock(target string) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *OpSession) Discard() error {
	args := m.Called()
	return args.Error(0)
}

func (m *OpSession) CloseSession() error {
	args := m.Called()
	return args.Error(0)
}

func (m *OpSession) KillSession(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}
