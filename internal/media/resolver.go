package media

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/logger"
)

// SNIFF_BYTES is how much of a file is downloaded to detect its type
const SNIFF_BYTES = 3072

// Kind groups MIME types the storefront renders differently
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindAudio   Kind = "audio"
	KindModel   Kind = "model"
	KindUnknown Kind = "unknown"
)

// Config holds configuration for the media resolver
type Config struct {
	// Gateway is used to build display URLs
	Gateway string
	// Gateways are checked in parallel when a reachable URL is required
	Gateways []string
}

// Media describes an asset file behind an IPFS reference
type Media struct {
	CID      string `json:"cid"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Kind     Kind   `json:"kind"`
}

// Resolver defines the interface for turning asset media references into URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/media_resolver.go -package=mocks -mock_names=Resolver=MockMediaResolver
type Resolver interface {
	// URL builds the display URL of a reference without any network call.
	// Empty references yield an empty string.
	URL(ref string) string

	// Resolve returns the URL of the first gateway that serves the reference
	Resolve(ctx context.Context, ref string) (string, error)

	// Detect resolves the reference and sniffs its MIME type
	Detect(ctx context.Context, ref string) (*Media, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     Config
}

// NewResolver creates a media resolver. Resolve also checks the display gateway.
func NewResolver(httpClient adapter.HTTPClient, config Config) Resolver {
	config.Gateway = strings.TrimRight(config.Gateway, "/")
	gateways := make([]string, 0, len(config.Gateways)+1)
	seen := map[string]bool{}
	for _, gw := range append([]string{config.Gateway}, config.Gateways...) {
		gw = strings.TrimRight(gw, "/")
		if gw == "" || seen[gw] {
			continue
		}
		seen[gw] = true
		gateways = append(gateways, gw)
	}
	config.Gateways = gateways

	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

// CID extracts the IPFS path from ipfs://, gateway URLs and bare CIDs.
// ok is false for other URLs.
func CID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if cid, ok := strings.CutPrefix(ref, "ipfs://"); ok {
		return strings.TrimPrefix(cid, "ipfs/"), true
	}
	if _, after, ok := strings.Cut(ref, "/ipfs/"); ok {
		return after, true
	}
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "data:") {
		return "", false
	}
	return strings.TrimPrefix(ref, "/"), true
}

func (r *resolver) URL(ref string) string {
	cid, ok := CID(ref)
	if !ok {
		return strings.TrimSpace(ref)
	}
	return fmt.Sprintf("%s/ipfs/%s", r.config.Gateway, cid)
}

func (r *resolver) Resolve(ctx context.Context, ref string) (string, error) {
	cid, ok := CID(ref)
	if !ok {
		if ref == "" {
			return "", fmt.Errorf("empty media reference")
		}
		return ref, nil
	}

	if len(r.config.Gateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	logger.DebugCtx(ctx, "Resolving IPFS CID", zap.String("cid", cid), zap.Int("gateways", len(r.config.Gateways)))

	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(r.config.Gateways))
	var wg sync.WaitGroup

	for _, gateway := range r.config.Gateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := fmt.Sprintf("%s/ipfs/%s", gw, cid)
			resp, err := r.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(gateway)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		if res.err == nil {
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}

func (r *resolver) Detect(ctx context.Context, ref string) (*Media, error) {
	url, err := r.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	head, err := r.httpClient.GetPartialContent(ctx, url, SNIFF_BYTES)
	if err != nil {
		return nil, fmt.Errorf("failed to download media header: %w", err)
	}

	mime := mimetype.Detect(head)
	cid, _ := CID(ref)

	return &Media{
		CID:      cid,
		URL:      url,
		MimeType: mime.String(),
		Kind:     kindOf(mime),
	}, nil
}

// kindOf walks up the mimetype tree until a known top level type is found
func kindOf(mime *mimetype.MIME) Kind {
	for m := mime; m != nil; m = m.Parent() {
		switch {
		case strings.HasPrefix(m.String(), "image/"):
			return KindImage
		case strings.HasPrefix(m.String(), "video/"):
			return KindVideo
		case strings.HasPrefix(m.String(), "audio/"):
			return KindAudio
		case strings.HasPrefix(m.String(), "model/"):
			return KindModel
		}
	}
	return KindUnknown
}
