package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockClient(t *testing.T) *http.Client {
	t.Helper()
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestOpenAIProvider_Ask(t *testing.T) {
	client := mockClient(t)
	httpmock.RegisterResponder(http.MethodPost, openAIEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
			var body chatRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, defaultOpenAIModel, body.Model)
			require.Len(t, body.Messages, 2)
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, "hola", body.Messages[1].Content)
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": "  ## Respuesta \n"}}},
			})
		})

	got, err := NewOpenAIProvider("sk-test", "", client).Ask(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "## Respuesta", got)
}

func TestOpenAIProvider_APIError(t *testing.T) {
	client := mockClient(t)
	httpmock.RegisterResponder(http.MethodPost, openAIEndpoint,
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":{"message":"invalid key"}}`))

	_, err := NewOpenAIProvider("sk-bad", "", client).Ask(context.Background(), "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestOpenAIProvider_MissingKey(t *testing.T) {
	client := mockClient(t)
	_, err := NewOpenAIProvider("", "", client).Ask(context.Background(), "hola")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestClaudeProvider_Ask(t *testing.T) {
	client := mockClient(t)
	httpmock.RegisterResponder(http.MethodPost, claudeEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "ck-test", req.Header.Get("x-api-key"))
			assert.Equal(t, claudeAPIVersion, req.Header.Get("anthropic-version"))
			var body claudeRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Len(t, body.Messages, 1)
			assert.Contains(t, body.Messages[0].Content, "hola")
			return httpmock.NewStringResponse(http.StatusOK, `{"content":[{"type":"text","text":"Plan CORDSLOC"}]}`), nil
		})

	got, err := NewClaudeProvider("ck-test", "", client).Ask(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "Plan CORDSLOC", got)
}

func TestClaudeProvider_EmptyContent(t *testing.T) {
	client := mockClient(t)
	httpmock.RegisterResponder(http.MethodPost, claudeEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{"content":[]}`))

	_, err := NewClaudeProvider("ck-test", "", client).Ask(context.Background(), "hola")
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
