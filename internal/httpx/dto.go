package httpx

import (
	"github.com/pragadeesh891/trolley/internal/cart"
	"github.com/pragadeesh891/trolley/internal/store"
)

type PairRequest struct {
	Code string `json:"code"`
}

type PairResponse struct {
	SessionID string `json:"session_id"`
	TrolleyID int    `json:"trolley_id"`
	Battery   int    `json:"battery"`
}

// AddItemRequest identifies a product by name or by barcode; exactly one
// of the two must be set.
type AddItemRequest struct {
	Product  string `json:"product,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
	Quantity int    `json:"quantity"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	Entries   []cart.Entry `json:"entries"`
	Total     float64      `json:"total"`
	Position  store.Cell   `json:"position"`
}

type BillResponse struct {
	SessionID string   `json:"session_id"`
	Lines     []string `json:"lines"`
	Total     float64  `json:"total"`
}

type CheckoutRequest struct {
	Email string `json:"email,omitempty"`
}

type CheckoutResponse struct {
	Total        float64 `json:"total"`
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
}

type BarcodeRequest struct {
	Code string `json:"code"`
}

type BarcodeResponse struct {
	Success bool     `json:"success"`
	Product string   `json:"product,omitempty"`
	Brands  []string `json:"brands,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type TranslateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type DetectLanguageRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang,omitempty"`
}

type DetectLanguageResponse struct {
	Language     string `json:"language"`
	LanguageName string `json:"language_name"`
}

type VoiceCommandRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type TrolleyControlRequest struct {
	Command  string `json:"command"`
	Language string `json:"language,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
