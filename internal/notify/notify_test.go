package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/damianoneill/net/v2/netconf/common"
	"github.com/netconfd/netconfd/netconf/mocks"
)

func TestReplayCollectsDeliveredNotifications(t *testing.T) {
	session := &mocks.OpSession{}
	session.On("Subscribe", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		nchan := args.Get(1).(chan *common.Notification)
		nchan <- &common.Notification{EventTime: "2026-07-31T00:00:00Z", Event: "<link-down/>"}
		nchan <- &common.Notification{EventTime: "2026-07-31T00:01:00Z", Event: "<link-up/>"}
		close(nchan)
	}).Return(&common.RPCReply{}, nil)

	events, err := Replay(session, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), -3600, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "<link-down/>", events[0].Content)
	assert.Equal(t, "<link-up/>", events[1].Content)
}

func TestReplayPropagatesSubscribeError(t *testing.T) {
	session := &mocks.OpSession{}
	session.On("Subscribe", mock.Anything, mock.Anything).Return(nil, errors.New("subscribe failed"))

	_, err := Replay(session, time.Now(), 0, 0)
	assert.Error(t, err)
}
