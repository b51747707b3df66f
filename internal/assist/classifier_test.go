package assist

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternClassifier(t *testing.T) {
	c := PatternClassifier{}
	ctx := context.Background()

	tests := []struct {
		text string
		want Intent
	}{
		{"move forward", Intent{Action: ActionMovement, Direction: "forward", Message: "Moving forward"}},
		{"please go BACKWARD now", Intent{Action: ActionMovement, Direction: "backward", Message: "Moving backward"}},
		{"turn left", Intent{Action: ActionMovement, Direction: "left", Message: "Turning left"}},
		{"stop", Intent{Action: ActionMovement, Direction: "stop", Message: "Stopping"}},
		{"go faster", Intent{Action: ActionSpeed, Change: "increase", Message: "Increasing speed"}},
		{"slow down", Intent{Action: ActionSpeed, Change: "decrease", Message: "Decreasing speed"}},
		{"what's in my cart", Intent{Action: ActionCart, Message: "Showing your cart contents"}},
		{"checkout please", Intent{Action: ActionCheckout, Message: "Proceeding to checkout"}},
		{"help", Intent{Action: ActionHelp, Message: helpMessage}},
		{"sing me a song", Intent{Action: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := c.Classify(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponderIsDeterministicWithSeed(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(42)))
	b := NewResponder(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Reply(), b.Reply())
	}
}

func TestResponderFillsUnknownIntentOnly(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))

	known := Intent{Action: ActionHelp, Message: helpMessage}
	assert.Equal(t, known, r.Respond(known))

	unknown := r.Respond(Intent{Action: ActionUnknown})
	assert.Equal(t, ActionUnknown, unknown.Action)
	assert.Contains(t, unknown.Message, "Say 'help' for available commands.")
}

func TestUnavailableCapabilities(t *testing.T) {
	u := Unavailable{}
	ctx := context.Background()

	_, err := u.Translate(ctx, "hello", "en", "hi")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = u.Detect(ctx, "hello")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = u.Transcribe(ctx, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}
