package httpapi

// EnglishToMorseRequest is the body of POST /api/v1/translate/english-to-morse.
type EnglishToMorseRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// MorseToEnglishRequest is the body of POST /api/v1/translate/morse-to-english.
type MorseToEnglishRequest struct {
	MorseCode string `json:"morse_code" validate:"required,min=1,max=5000"`
}

// TranslationResponse is the success payload of both translate endpoints.
// Output is a single string for an unambiguous translation and a list of
// strings when an unspaced Morse input has several readings.
type TranslationResponse struct {
	Input           string `json:"input"`
	Output          any    `json:"output"`
	TranslationType string `json:"translation_type"`
	CharacterCount  int    `json:"character_count"`
	Success         bool   `json:"success"`
}

// ErrorResponse is the payload of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
	Success bool   `json:"success"`
}

// HealthResponse is the payload of GET /api/v1/health.
type HealthResponse struct {
	Status              string   `json:"status"`
	Version             string   `json:"version"`
	SupportedCharacters []string `json:"supported_characters"`
}
