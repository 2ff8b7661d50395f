package ai

import "vadi/internal/modules/location"

// systemPrompt frames every request sent through the gateway.
const systemPrompt = "Eres un asistente experto que responde en español de forma clara, organizada y útil para viajeros y emprendedores en Costa Rica."

// ParsedResponse is the /parsed payload: the answer text and the places
// listed under its CORDSLOC section.
type ParsedResponse struct {
	Mensaje        string           `json:"mensaje"`
	Localizaciones []location.Point `json:"localizaciones"`
}

// TextResponse is the bare endpoint payload.
type TextResponse struct {
	Results string `json:"results"`
}
