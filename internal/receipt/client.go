package receipt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// VisionClient is the contract with the external AI vision service.
// Both calls take a base64 data URI ("data:<mimetype>;base64,<data>").
type VisionClient interface {
	// ValidateReceipt classifies whether the image is a genuine
	// receipt/invoice/bill and explains the verdict.
	ValidateReceipt(ctx context.Context, dataURI string) (*Validation, error)

	// ExtractItems reads line items, subtotal, tax, and total off a
	// receipt image. Amounts come back as raw currency strings.
	ExtractItems(ctx context.Context, dataURI string) (*Extraction, error)

	// ValidateProofPhoto classifies whether the image works as proof
	// of purchase (storefront, shop interior, groceries, cart). A
	// receipt is not valid proof.
	ValidateProofPhoto(ctx context.Context, dataURI string) (*ProofValidation, error)
}

const (
	validatePrompt = `You are a strict image classifier. Decide whether the image is a genuine receipt, invoice, bill, or proof of purchase. Respond in JSON with a boolean field "is_receipt" and a string field "reason" explaining your decision in Indonesian, especially if it is not valid.`

	extractPrompt = `You are an expert receipt parser. The receipt is in Indonesian Rupiah (Rp). Extract every line item with its name, quantity, and total line price, plus the subtotal, the tax amount (often labeled PPN or PB1), and the final total. Respond in JSON: {"items":[{"item":string,"quantity":number,"price":string}],"subtotal":string,"tax":string,"total":string}. Leave subtotal or tax empty if the receipt does not state them.`

	proofPrompt = `You are an expert image classifier. Decide whether the image is suitable as proof of purchase from a store. The image is valid if it clearly shows a storefront, the inside of a shop, a collection of grocery items, or a shopping cart or basket with products. An image of a receipt is NOT valid for this task. An image of a random object, person, or landscape is NOT valid. Respond in JSON with a boolean field "is_valid" and a string field "reason" explaining your decision in Indonesian, especially if it is not valid.`
)

// Client calls an OpenAI-compatible chat-completions endpoint with the
// image attached and a JSON response requested.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient creates a vision client for the given endpoint
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// IsDataURI reports whether the payload looks like a base64 image data URI
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ";base64,")
}

// ValidateReceipt implements VisionClient
func (c *Client) ValidateReceipt(ctx context.Context, dataURI string) (*Validation, error) {
	var v Validation
	if err := c.complete(ctx, validatePrompt, dataURI, &v); err != nil {
		return nil, fmt.Errorf("validate receipt: %w", err)
	}
	return &v, nil
}

// ExtractItems implements VisionClient
func (c *Client) ExtractItems(ctx context.Context, dataURI string) (*Extraction, error) {
	var e Extraction
	if err := c.complete(ctx, extractPrompt, dataURI, &e); err != nil {
		return nil, fmt.Errorf("extract items: %w", err)
	}
	return &e, nil
}

// ValidateProofPhoto implements VisionClient
func (c *Client) ValidateProofPhoto(ctx context.Context, dataURI string) (*ProofValidation, error) {
	var v ProofValidation
	if err := c.complete(ctx, proofPrompt, dataURI, &v); err != nil {
		return nil, fmt.Errorf("validate proof photo: %w", err)
	}
	return &v, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// complete sends one prompt+image turn and unmarshals the model's JSON
// answer into out.
func (c *Client) complete(ctx context.Context, prompt, dataURI string, out any) error {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
				},
			},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vision service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if chat.Error != nil {
		return fmt.Errorf("vision service error: %s", chat.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vision service returned status %d", resp.StatusCode)
	}
	if len(chat.Choices) == 0 {
		return fmt.Errorf("vision service returned no choices")
	}

	content := chat.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("model answer is not valid JSON: %w", err)
	}
	return nil
}
