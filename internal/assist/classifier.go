package assist

import (
	"context"
	"strings"
)

// Action is the category a spoken command resolves to.
type Action string

const (
	ActionMovement Action = "movement"
	ActionSpeed    Action = "speed"
	ActionCart     Action = "cart"
	ActionCheckout Action = "checkout"
	ActionHelp     Action = "help"
	ActionUnknown  Action = "unknown"
)

// Intent is the classified meaning of a command, plus the reply the
// trolley should speak back.
type Intent struct {
	Action    Action `json:"action"`
	Direction string `json:"direction,omitempty"`
	Change    string `json:"change,omitempty"`
	Message   string `json:"message"`
}

// Classifier maps free text to an Intent. A hosted language model can fill
// this slot; the pattern classifier below is the always-available default.
type Classifier interface {
	Classify(ctx context.Context, text string) (Intent, error)
}

const helpMessage = "Available commands: move forward, turn left, turn right, stop, faster, slower, show cart, checkout, help"

// command vocabularies, longest phrases first so "speed up" wins over "up".
var movementPatterns = []struct {
	direction string
	phrases   []string
}{
	{"forward", []string{"move forward", "go forward", "forward", "ahead"}},
	{"backward", []string{"move backward", "go backward", "backward", "back", "reverse"}},
	{"left", []string{"turn left", "left"}},
	{"right", []string{"turn right", "right"}},
	{"stop", []string{"stop", "halt", "pause"}},
}

var speedPatterns = []struct {
	change  string
	phrases []string
}{
	{"increase", []string{"faster", "speed up", "increase speed", "go faster"}},
	{"decrease", []string{"slower", "slow down", "decrease speed", "go slower"}},
}

var (
	cartPhrases     = []string{"show cart", "cart", "my items", "what's in my cart"}
	checkoutPhrases = []string{"checkout", "pay", "bill", "check out"}
	helpPhrases     = []string{"help", "assist", "support", "what can you do"}
)

// PatternClassifier matches commands against fixed phrase lists. It is
// deterministic and needs no external service.
type PatternClassifier struct{}

func (PatternClassifier) Classify(ctx context.Context, text string) (Intent, error) {
	t := strings.ToLower(strings.TrimSpace(text))

	for _, p := range movementPatterns {
		if containsAny(t, p.phrases) {
			return Intent{
				Action:    ActionMovement,
				Direction: p.direction,
				Message:   movementMessage(p.direction),
			}, nil
		}
	}

	for _, p := range speedPatterns {
		if containsAny(t, p.phrases) {
			msg := "Decreasing speed"
			if p.change == "increase" {
				msg = "Increasing speed"
			}
			return Intent{Action: ActionSpeed, Change: p.change, Message: msg}, nil
		}
	}

	switch {
	case containsAny(t, cartPhrases):
		return Intent{Action: ActionCart, Message: "Showing your cart contents"}, nil
	case containsAny(t, checkoutPhrases):
		return Intent{Action: ActionCheckout, Message: "Proceeding to checkout"}, nil
	case containsAny(t, helpPhrases):
		return Intent{Action: ActionHelp, Message: helpMessage}, nil
	}

	return Intent{Action: ActionUnknown}, nil
}

func movementMessage(direction string) string {
	switch direction {
	case "stop":
		return "Stopping"
	case "left":
		return "Turning left"
	case "right":
		return "Turning right"
	default:
		return "Moving " + direction
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
