package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// maxGatewayBody caps how much of a gateway response is read.
const maxGatewayBody = 1 << 20

// GatewayClient posts an OpenAI-shaped request to a free completion gateway.
// Such gateways answer either with a completion object or with bare text,
// and both are accepted: the shape is decided here and nowhere else.
type GatewayClient struct {
	URL   string
	Model string
	HTTP  *http.Client
}

// NewGatewayClient returns a client for the gateway at url.
func NewGatewayClient(url, model string) *GatewayClient {
	if model == "" {
		model = DefaultChatModel
	}
	return &GatewayClient{URL: url, Model: model, HTTP: http.DefaultClient}
}

// Complete sends req and classifies the answer.  A JSON object is taken as a
// completion and becomes a StructuredReply, even when it has no choices;
// any other non-empty body is an OpaqueReply.
func (g *GatewayClient) Complete(ctx context.Context, req Request) (Reply, error) {
	payload, err := json.Marshal(openai.ChatCompletionRequest{
		Model:    g.Model,
		Messages: req.messages(),
	})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := g.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return classify(body)
}

func classify(body []byte) (Reply, error) {
	var completion openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err == nil {
		return StructuredReply{Response: completion}, nil
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return nil, ErrNoReply
	}
	return OpaqueReply{Body: text}, nil
}
