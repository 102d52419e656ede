package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	chatTimeout  = 30 * time.Second
	chatRetries  = 2
	retryBackoff = 2 * time.Second
)

// Client wraps the Gemini SDK for the two advisor features: chat advice
// and video generation.
type Client struct {
	genai      *genai.Client
	apiKey     string
	chatModel  string
	videoModel string
	httpClient *http.Client
}

func NewClient(ctx context.Context, apiKey, chatModel, videoModel string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Client{
		genai:      gc,
		apiKey:     apiKey,
		chatModel:  chatModel,
		videoModel: videoModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Chat sends a prompt with the FlowBot system instruction. Each attempt
// is bounded by chatTimeout and transport failures are retried twice.
func (c *Client) Chat(ctx context.Context, prompt string, actx AdvisorContext) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(actx.SystemInstruction(), genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= chatRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff)
		}
		callCtx, cancel := context.WithTimeout(ctx, chatTimeout)
		resp, err := c.genai.Models.GenerateContent(callCtx, c.chatModel, genai.Text(prompt), cfg)
		cancel()
		if err == nil {
			return resp.Text(), nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("generate content: %w", lastErr)
}

// Generate submits a video job to the provider and returns a pollable
// operation handle.
func (c *Client) Generate(ctx context.Context, prompt string) (videoOperation, error) {
	full := fmt.Sprintf("A professional financial advisor person speaking directly to the camera, explaining: %q", prompt)
	op, err := c.genai.Models.GenerateVideos(ctx, c.videoModel, full, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    "16:9",
	})
	if err != nil {
		return nil, fmt.Errorf("generate videos: %w", err)
	}
	return &genaiVideoOp{client: c.genai, op: op}, nil
}

// FetchVideo downloads a finished video by its result URI. The provider
// requires the API key in a request header rather than the URI.
func (c *Client) FetchVideo(ctx context.Context, uri string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch generated video: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch generated video: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// IsAuthExpired reports whether a provider error means the API key
// session lapsed and the caller has to select a key again.
func IsAuthExpired(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Requested entity was not found")
}

type genaiVideoOp struct {
	client *genai.Client
	op     *genai.GenerateVideosOperation
}

func (o *genaiVideoOp) Poll(ctx context.Context) (bool, error) {
	op, err := o.client.Operations.GetVideosOperation(ctx, o.op, nil)
	if err != nil {
		return false, err
	}
	o.op = op
	return op.Done, nil
}

func (o *genaiVideoOp) ResultURI() (string, bool) {
	if o.op.Response == nil || len(o.op.Response.GeneratedVideos) == 0 {
		return "", false
	}
	v := o.op.Response.GeneratedVideos[0].Video
	if v == nil || v.URI == "" {
		return "", false
	}
	return v.URI, true
}
