package media_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/media"
	"github.com/abstrakts/storefront-core/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func headResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestCID(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
		ok       bool
	}{
		{name: "bare cid", ref: testCID, expected: testCID, ok: true},
		{name: "bare cid with path", ref: testCID + "/1.png", expected: testCID + "/1.png", ok: true},
		{name: "ipfs scheme", ref: "ipfs://" + testCID, expected: testCID, ok: true},
		{name: "ipfs scheme with ipfs prefix", ref: "ipfs://ipfs/" + testCID, expected: testCID, ok: true},
		{name: "gateway url", ref: "https://gateway.pinata.cloud/ipfs/" + testCID, expected: testCID, ok: true},
		{name: "http url", ref: "https://example.com/a.png", expected: "", ok: false},
		{name: "data uri", ref: "data:image/png;base64,AAAA", expected: "", ok: false},
		{name: "empty", ref: "  ", expected: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cid, ok := media.CID(tt.ref)
			assert.Equal(t, tt.expected, cid)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestResolver_URL(t *testing.T) {
	resolver := media.NewResolver(nil, media.Config{Gateway: "https://ipfs.io/"})

	assert.Equal(t, "https://ipfs.io/ipfs/"+testCID, resolver.URL(testCID))
	assert.Equal(t, "https://ipfs.io/ipfs/"+testCID, resolver.URL("ipfs://"+testCID))
	assert.Equal(t, "https://example.com/a.png", resolver.URL("https://example.com/a.png"))
	assert.Equal(t, "", resolver.URL(""))
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		config      media.Config
		setupMocks  func(*mocks.MockHTTPClient)
		expected    string
		expectedErr string
	}{
		{
			name:     "regular HTTPS URL",
			ref:      "https://example.com/a.png",
			config:   media.Config{Gateway: "https://ipfs.io"},
			expected: "https://example.com/a.png",
		},
		{
			name:   "display gateway serves the CID",
			ref:    "ipfs://" + testCID,
			config: media.Config{Gateway: "https://ipfs.io"},
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).Return(headResponse(http.StatusOK), nil)
			},
			expected: "https://ipfs.io/ipfs/" + testCID,
		},
		{
			name: "fallback gateway serves the CID",
			ref:  testCID,
			config: media.Config{
				Gateway:  "https://ipfs.io",
				Gateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud"},
			},
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(headResponse(http.StatusNotFound), nil).MaxTimes(1)
				m.EXPECT().Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+testCID).
					Return(headResponse(http.StatusOK), nil)
			},
			expected: "https://gateway.pinata.cloud/ipfs/" + testCID,
		},
		{
			name: "no gateway serves the CID",
			ref:  testCID,
			config: media.Config{
				Gateway:  "https://ipfs.io",
				Gateways: []string{"https://gateway.pinata.cloud"},
			},
			setupMocks: func(m *mocks.MockHTTPClient) {
				m.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).Return(nil, errors.New("timeout"))
				m.EXPECT().Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+testCID).
					Return(headResponse(http.StatusBadGateway), nil)
			},
			expectedErr: "no working IPFS gateway found for CID",
		},
		{
			name:        "no gateways configured",
			ref:         testCID,
			config:      media.Config{},
			expectedErr: "no IPFS gateways configured",
		},
		{
			name:        "empty reference",
			ref:         "",
			config:      media.Config{Gateway: "https://ipfs.io"},
			expectedErr: "empty media reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTPClient)
			}

			resolver := media.NewResolver(mockHTTPClient, tt.config)
			got, err := resolver.Resolve(context.Background(), tt.ref)
			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolver_Detect(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	tests := []struct {
		name         string
		content      []byte
		expectedMIME string
		expectedKind media.Kind
	}{
		{name: "png image", content: pngHeader, expectedMIME: "image/png", expectedKind: media.KindImage},
		{name: "plain text", content: []byte("hello"), expectedMIME: "text/plain; charset=utf-8", expectedKind: media.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			url := "https://ipfs.io/ipfs/" + testCID
			mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
			mockHTTPClient.EXPECT().Head(gomock.Any(), url).Return(headResponse(http.StatusOK), nil)
			mockHTTPClient.EXPECT().GetPartialContent(gomock.Any(), url, media.SNIFF_BYTES).Return(tt.content, nil)

			resolver := media.NewResolver(mockHTTPClient, media.Config{Gateway: "https://ipfs.io"})
			got, err := resolver.Detect(context.Background(), testCID)
			require.NoError(t, err)
			assert.Equal(t, &media.Media{
				CID:      testCID,
				URL:      url,
				MimeType: tt.expectedMIME,
				Kind:     tt.expectedKind,
			}, got)
		})
	}
}

func TestResolver_Detect_DownloadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockHTTPClient.EXPECT().Head(gomock.Any(), gomock.Any()).Return(headResponse(http.StatusOK), nil)
	mockHTTPClient.EXPECT().GetPartialContent(gomock.Any(), gomock.Any(), media.SNIFF_BYTES).Return(nil, errors.New("reset"))

	resolver := media.NewResolver(mockHTTPClient, media.Config{Gateway: "https://ipfs.io"})
	_, err := resolver.Detect(context.Background(), testCID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download media header")
}

func TestImageAndVideoRef(t *testing.T) {
	tests := []struct {
		name          string
		data          map[string]interface{}
		expectedImage string
		expectedVideo string
	}{
		{name: "img wins", data: map[string]interface{}{"img": "a", "image": "b"}, expectedImage: "a"},
		{name: "image", data: map[string]interface{}{"image": "b", "video": "v"}, expectedImage: "b", expectedVideo: "v"},
		{name: "glb thumbnail", data: map[string]interface{}{"glbthumb": "g"}, expectedImage: "g"},
		{name: "non string ignored", data: map[string]interface{}{"img": 5, "video": 3}},
		{name: "nil data", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedImage, media.ImageRef(tt.data))
			assert.Equal(t, tt.expectedVideo, media.VideoRef(tt.data))
		})
	}
}
