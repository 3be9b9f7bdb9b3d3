// Package gemini calls Gemini models directly. It implements the gateway
// provider interface so the service can run without the external AI service.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	genaisdk "google.golang.org/genai"

	"github.com/careercompass/backend/config"
	"github.com/careercompass/backend/models"
)

const (
	temperature     = 0.2
	topP            = 0.8
	maxOutputTokens = 8192
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// model returns a fresh model handle; handles are not shared between calls
func (c *Client) model(jsonOutput bool) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(maxOutputTokens)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}
	return model
}

// Analyze implements gateway.Provider
func (c *Client) Analyze(ctx context.Context, req models.ProviderAnalyzeRequest) (*models.ProviderAnalyzeResponse, error) {
	prompt := AnalysisPrompt(req)

	if creds := callerGeminiKey(req.Credentials()); creds != nil {
		text, modelName, err := c.generateWithKey(ctx, creds, prompt, nil, true)
		if err != nil {
			return nil, err
		}
		resp, err := ParseAnalysis(text)
		if err != nil {
			return nil, err
		}
		resp.Model = modelName
		return resp, nil
	}

	resp, err := c.model(true).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := ParseAnalysis(extractText(resp))
	if err != nil {
		return nil, err
	}
	result.Model = c.modelName

	log.Printf("[Gemini] Analysis generated: score=%v, matched=%d, missing=%d",
		scoreOf(result), len(result.MatchedSkills), len(result.MissingSkills))
	return result, nil
}

// Chat implements gateway.Provider. History is replayed as prior turns.
func (c *Client) Chat(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
	instruction := ChatInstruction(req.Context)

	if creds := callerGeminiKey(req.Credentials()); creds != nil {
		contents := make([]*genaisdk.Content, 0, len(req.History)+1)
		for _, turn := range req.History {
			contents = append(contents, genaisdk.NewContentFromText(turn.Content, sdkRole(turn.Role)))
		}
		contents = append(contents, genaisdk.NewContentFromText(req.Message, genaisdk.RoleUser))

		text, modelName, err := c.generateWithKey(ctx, creds, instruction, contents, false)
		if err != nil {
			return nil, err
		}
		return &models.ProviderChatResponse{Response: text, Model: modelName}, nil
	}

	model := c.model(false)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(instruction)}}

	session := model.StartChat()
	for _, turn := range req.History {
		session.History = append(session.History, &genai.Content{
			Role:  vertexRole(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return nil, fmt.Errorf("failed to send chat message: %w", err)
	}

	return &models.ProviderChatResponse{Response: extractText(resp), Model: c.modelName}, nil
}

// generateWithKey runs one request against the Gemini API with the caller's
// key. With nil contents, prompt is sent as the only user message; otherwise
// prompt becomes the system instruction.
func (c *Client) generateWithKey(ctx context.Context, creds *models.ProviderCredentials, prompt string, contents []*genaisdk.Content, jsonOutput bool) (string, string, error) {
	client, err := genaisdk.NewClient(ctx, &genaisdk.ClientConfig{
		APIKey:  creds.APIKey,
		Backend: genaisdk.BackendGeminiAPI,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := creds.Model
	if modelName == "" {
		modelName = c.modelName
	}

	temp := float32(temperature)
	cfg := &genaisdk.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
	if jsonOutput {
		cfg.ResponseMIMEType = "application/json"
	}
	if contents == nil {
		contents = genaisdk.Text(prompt)
	} else {
		cfg.SystemInstruction = genaisdk.NewContentFromText(prompt, genaisdk.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", "", errors.New("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", "", errors.New("no text content in response")
	}

	log.Printf("[Gemini] Generated with caller key: model=%s", modelName)
	return text, modelName, nil
}

// callerGeminiKey returns the caller credentials when they can be used here.
// Keys for other providers are ignored and the server model answers.
func callerGeminiKey(creds *models.ProviderCredentials) *models.ProviderCredentials {
	if creds == nil {
		return nil
	}
	provider := strings.ToLower(creds.Provider)
	if provider != "" && provider != models.DefaultProvider {
		log.Printf("[Gemini] Ignoring caller key for provider %q; using server model", provider)
		return nil
	}
	return creds
}

func vertexRole(role string) string {
	if role == models.RoleAssistant {
		return "model"
	}
	return "user"
}

func sdkRole(role string) genaisdk.Role {
	if role == models.RoleAssistant {
		return genaisdk.RoleModel
	}
	return genaisdk.RoleUser
}

func scoreOf(resp *models.ProviderAnalyzeResponse) interface{} {
	if resp.MatchScore == nil {
		return "none"
	}
	return *resp.MatchScore
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
