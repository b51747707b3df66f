package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pragadeesh891/trolley/internal/assist"
)

// Translate translates text between two languages. "auto" as the source
// language asks the detector first.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Text == "" || req.TargetLang == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "text and target_lang are required")
		return
	}

	src := req.SourceLang
	if src == "" || src == "auto" {
		detected, err := h.detector.Detect(r.Context(), req.Text)
		if err != nil {
			h.writeCapabilityError(w, r.Context(), "detect-language", err)
			return
		}
		src = detected
	}

	out, err := h.translator.Translate(r.Context(), req.Text, src, req.TargetLang)
	if err != nil {
		h.writeCapabilityError(w, r.Context(), "translate", err)
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{
		OriginalText:   req.Text,
		TranslatedText: out,
		SourceLanguage: src,
		TargetLanguage: req.TargetLang,
	})
}

// DetectLanguage classifies the language of a piece of text. A non-auto
// source_lang short-circuits to a lookup of the display name.
func (h *Handler) DetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req DetectLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	lang := req.SourceLang
	if lang == "" || lang == "auto" {
		detected, err := h.detector.Detect(r.Context(), req.Text)
		if err != nil {
			h.writeCapabilityError(w, r.Context(), "detect-language", err)
			return
		}
		lang = detected
	}

	name, ok := assist.SupportedLanguages[lang]
	if !ok {
		name = "Unknown"
	}
	writeJSON(w, http.StatusOK, DetectLanguageResponse{Language: lang, LanguageName: name})
}

// VoiceCommand classifies a spoken command. Non-English commands are
// translated to English for classification and the reply is translated
// back; if translation is unavailable the raw text is classified as-is.
func (h *Handler) VoiceCommand(w http.ResponseWriter, r *http.Request) {
	var req VoiceCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	h.classifyAndReply(w, r, req.Text, req.Language)
}

// TrolleyControl is the direct control endpoint; it shares the voice
// command pipeline.
func (h *Handler) TrolleyControl(w http.ResponseWriter, r *http.Request) {
	var req TrolleyControlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	h.classifyAndReply(w, r, req.Command, req.Language)
}

func (h *Handler) classifyAndReply(w http.ResponseWriter, r *http.Request, text, language string) {
	ctx := r.Context()

	processed := text
	if language != "" && language != "en" {
		if translated, err := h.translator.Translate(ctx, text, language, "en"); err == nil {
			processed = translated
		} else if !errors.Is(err, assist.ErrUnavailable) {
			slog.WarnContext(ctx, "translation failed, classifying raw text", "error", err)
		}
	}

	in, err := h.classifier.Classify(ctx, processed)
	if err != nil {
		writeError(w, http.StatusBadGateway, "classifier_error", err.Error())
		return
	}
	in = h.responder.Respond(in)

	if language != "" && language != "en" {
		if translated, err := h.translator.Translate(ctx, in.Message, "en", language); err == nil {
			in.Message = translated
		}
	}

	writeJSON(w, http.StatusOK, in)
}

func (h *Handler) writeCapabilityError(w http.ResponseWriter, ctx context.Context, capability string, err error) {
	if errors.Is(err, assist.ErrUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "capability_unavailable", capability+" is not configured")
		return
	}
	slog.ErrorContext(ctx, "capability failed", "capability", capability, "error", err)
	writeError(w, http.StatusBadGateway, "capability_error", err.Error())
}
