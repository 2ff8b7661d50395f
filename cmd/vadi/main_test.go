package main

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vadi/internal/config"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Log.Level = "error"
	cfg.Models = []config.ModelEndpoint{
		{ID: "chatgpt", Name: "ChatGPT", Endpoint: "http://models.test/api/openai", Color: "bg-green-500"},
		{ID: "claude", Name: "Claude", Endpoint: "http://models.test/api/claude", Color: "bg-purple-500"},
	}
	return cfg
}

func run(t *testing.T, client *http.Client, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand(testConfig(), client)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestModelsCommand(t *testing.T) {
	out, _, err := run(t, http.DefaultClient, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "chatgpt")
	assert.Contains(t, out, "http://models.test/api/claude")
}

func TestCompareCommand_Vacation(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "http://models.test/api/openai/parsed",
		httpmock.NewStringResponder(http.StatusOK, `{"message":"Plan A","locations":[{"lugar":"Volcán Arenal","latitud":10.4630,"longitud":84.7030}]}`))
	transport.RegisterResponder(http.MethodPost, "http://models.test/api/claude/parsed",
		httpmock.NewStringResponder(http.StatusInternalServerError, `boom`))

	out, errOut, err := run(t, &http.Client{Transport: transport}, "compare", "--mode", "vacaciones", "Una semana en La Fortuna")
	require.NoError(t, err)
	assert.Contains(t, out, "===== ChatGPT =====\nPlan A")
	assert.NotContains(t, out, "===== Claude")
	assert.Contains(t, out, "Volcán Arenal\t10.4630, -84.7030")
	assert.Contains(t, errOut, "Error con Claude")
}

func TestCompareCommand_UnknownModel(t *testing.T) {
	transport := httpmock.NewMockTransport()
	_, _, err := run(t, &http.Client{Transport: transport}, "compare", "--models", "llama", "hola")
	assert.Error(t, err)
	assert.Zero(t, transport.GetTotalCallCount())
}

func TestCompareCommand_DefaultPromptBusinessJSON(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "http://models.test/api/openai",
		httpmock.NewStringResponder(http.StatusOK, `{"results":"## Idea 1"}`))

	out, _, err := run(t, &http.Client{Transport: transport}, "compare", "--mode", "business", "--models", "chatgpt", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "## Idea 1"`)
	assert.Contains(t, out, "San Vicente")
}
