// Package assist abstracts the optional language capabilities the trolley
// offers: translation, language detection and spoken-command understanding.
//
// Each capability is a one-method interface with an explicit unavailable
// variant. Which implementation serves a capability is decided once at
// startup; callers never probe availability per call, they just handle
// ErrUnavailable like any other failure.
package assist

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by a capability whose backing service is not
// configured in this deployment.
var ErrUnavailable = errors.New("capability unavailable")

// Translator translates text between two languages.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Detector guesses the language of a piece of text.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Unavailable satisfies every capability interface by failing with
// ErrUnavailable. It is the startup-time placeholder for services that are
// not wired in.
type Unavailable struct{}

func (Unavailable) Translate(ctx context.Context, text, from, to string) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Detect(ctx context.Context, text string) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", ErrUnavailable
}

// SupportedLanguages maps the language codes the trolley UI offers to
// their display names.
var SupportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"ml": "Malayalam",
	"kn": "Kannada",
	"bn": "Bengali",
	"mr": "Marathi",
	"gu": "Gujarati",
	"pa": "Punjabi",
}
