package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"ggmoney/internal/core"
)

const maxBodyBytes = 1 << 16 // 64KB, more than any expense form needs

// requireMethod answers 405 with an Allow header when the request method
// does not match.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON parses the request body into dst, answering 400 on malformed
// input. Only structural problems are errors here; bad numeric values
// inside a valid body degrade to zero downstream.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		slog.ErrorContext(r.Context(), "Failed to parse request body",
			"error", err, "method", r.Method, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// rawAmount maps a JSON amount value onto the amount union: numbers stay
// numeric, strings go through text parsing, and anything else (including
// null and absent) falls through to the parser's zero default. Absent and
// null mean "not provided", which edit treats as keep-existing.
func rawAmount(raw json.RawMessage) core.RawAmount {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return core.TextAmount(s)
		}
		return core.TextAmount("")
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return core.NumberAmount(f)
	}
	// Booleans, objects, arrays: not an amount, degrades to zero.
	return core.TextAmount(strings.TrimSpace(string(raw)))
}
