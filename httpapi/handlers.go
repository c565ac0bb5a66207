package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	translationEnglishToMorse = "english_to_morse"
	translationMorseToEnglish = "morse_to_english"
)

// handleRoot returns basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Morse Code Translator API",
		"version": Version,
		"health":  "/api/v1/health",
	})
}

// handlePing is a minimal liveness probe.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// handleHealth returns service status along with the alphabet the engine
// can encode.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:              "healthy",
		Version:             Version,
		SupportedCharacters: s.translator.Table().SupportedSymbols(),
	})
}

// handleSupportedCharacters lists the encodable symbols of the active table.
func (s *Server) handleSupportedCharacters(w http.ResponseWriter, r *http.Request) {
	symbols := s.translator.Table().SupportedSymbols()
	writeJSON(w, http.StatusOK, map[string]any{
		"supported_characters": symbols,
		"total_count":          len(symbols),
	})
}

// handleEnglishToMorse converts English text to Morse code.
func (s *Server) handleEnglishToMorse(w http.ResponseWriter, r *http.Request) {
	var req EnglishToMorseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "Text cannot be empty or only whitespace", "")
		return
	}

	output := s.translator.Encode(text)
	if output == "" {
		writeError(w, http.StatusBadRequest, "No translatable characters found in input text", "")
		return
	}

	writeJSON(w, http.StatusOK, TranslationResponse{
		Input:           text,
		Output:          output,
		TranslationType: translationEnglishToMorse,
		CharacterCount:  utf8.RuneCountInString(text),
		Success:         true,
	})
}

// handleMorseToEnglish converts Morse code to English. Unspaced input may
// have several readings; they are all returned, as a list.
func (s *Server) handleMorseToEnglish(w http.ResponseWriter, r *http.Request) {
	var req MorseToEnglishRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	code := strings.TrimSpace(req.MorseCode)
	if code == "" {
		writeError(w, http.StatusBadRequest, "Morse code cannot be empty or only whitespace", "")
		return
	}
	if !s.translator.IsValidMorse(code) {
		writeError(w, http.StatusBadRequest,
			"Invalid Morse code format. Use only dots (.), dashes (-), spaces, and slashes (/).", "")
		return
	}

	readings := lo.Filter(s.translator.Decode(code), func(reading string, _ int) bool {
		return reading != ""
	})
	if len(readings) == 0 {
		writeError(w, http.StatusBadRequest,
			"No valid English translations found for the provided Morse code", "")
		return
	}

	// A single reading is returned as a plain string for convenience.
	var output any = readings
	if len(readings) == 1 {
		output = readings[0]
	}

	writeJSON(w, http.StatusOK, TranslationResponse{
		Input:           code,
		Output:          output,
		TranslationType: translationMorseToEnglish,
		CharacterCount:  utf8.RuneCountInString(code),
		Success:         true,
	})
}

// decodeBody reads, parses and validates a JSON request body. It writes the
// error response itself and reports whether the handler should proceed.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, req any) bool {
	// Cap request bodies well above the schema limits to bound memory use.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if isMaxBytesError(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON request body", err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "request validation failed", err.Error())
		return false
	}
	return true
}

// isMaxBytesError reports whether err (or any error in its chain) is an
// *http.MaxBytesError, indicating the request body exceeded the size limit.
func isMaxBytesError(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, ErrorResponse{
		Error:   message,
		Detail:  detail,
		Success: false,
	})
}
