package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/mocks"
	"github.com/abstrakts/storefront-core/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	MaxReconnects:  -1,
	ReconnectWait:  2 * time.Second,
	ConnectionName: "storefront-api-test",
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	pub, err := jetstream.NewPublisher(testConfig, natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nc, js, nil)

	event := &domain.MarketEvent{
		ID:            "01HZYB2Q7VQ3",
		ChainKey:      domain.ChainXPRNetwork,
		Kind:          "buy",
		Actor:         "alice",
		TransactionID: "abc123",
		Collection:    "abstrakts",
		AssetIDs:      []string{"1099511627776"},
		Timestamp:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(gomock.Any(), "storefront.xprnetwork.buy", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.MarketEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.ID, decoded.ID)
			assert.Equal(t, event.AssetIDs, decoded.AssetIDs)
			return &natsjs.PubAck{Stream: "STOREFRONT", Sequence: 1}, nil
		})
	nc.EXPECT().Close()

	pub, err := jetstream.NewPublisher(testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)
	defer pub.Close()

	assert.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEvent_Errors(t *testing.T) {
	event := &domain.MarketEvent{ID: "1", ChainKey: domain.ChainXPRNetworkTest, Kind: "sell"}

	tests := []struct {
		name    string
		setup   func(js *mocks.MockJetStream, j *mocks.MockJSON)
		wantErr string
	}{
		{
			name: "marshal failure",
			setup: func(js *mocks.MockJetStream, j *mocks.MockJSON) {
				j.EXPECT().Marshal(event).Return(nil, errors.New("bad value"))
			},
			wantErr: "failed to marshal event",
		},
		{
			name: "publish failure",
			setup: func(js *mocks.MockJetStream, j *mocks.MockJSON) {
				j.EXPECT().Marshal(event).Return([]byte(`{}`), nil)
				js.EXPECT().
					Publish(gomock.Any(), "storefront.xprnetwork-test.sell", []byte(`{}`)).
					Return(nil, errors.New("no responders"))
			},
			wantErr: "failed to publish event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			nc := mocks.NewMockNatsConn(ctrl)
			js := mocks.NewMockJetStream(ctrl)
			j := mocks.NewMockJSON(ctrl)
			natsJS := mocks.NewMockNatsJetStream(ctrl)
			natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nc, js, nil)
			tt.setup(js, j)

			pub, err := jetstream.NewPublisher(testConfig, natsJS, j)
			require.NoError(t, err)

			err = pub.PublishEvent(context.Background(), event)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSubject(t *testing.T) {
	tests := []struct {
		chain domain.ChainKey
		kind  string
		want  string
	}{
		{chain: domain.ChainXPRNetwork, kind: "auction", want: "storefront.xprnetwork.auction"},
		{chain: domain.ChainXPRNetworkTest, kind: "special_mint", want: "storefront.xprnetwork-test.special_mint"},
		{chain: "custom.chain", kind: "transfer", want: "storefront.custom_chain.transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, jetstream.Subject(&domain.MarketEvent{ChainKey: tt.chain, Kind: tt.kind}))
		})
	}
}
