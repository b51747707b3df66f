package assist

import "math/rand"

// fallbackReplies are the canned answers the trolley gives when a command
// does not classify. The selection is driven by an injected *rand.Rand so
// tests can seed it and assert exact output.
var fallbackReplies = []string{
	"I'm your smart shopping assistant. I can help you find products, check prices, and navigate the store.",
	"Ask me about product locations, prices, or store navigation to make your shopping easier.",
	"I'm here to assist with your shopping experience. Please ask about specific products or store layout.",
	"Need help finding something? Ask me about products or store sections.",
	"I can help you locate items in the store and provide product information.",
}

// Responder fills in the message of unknown-intent results.
type Responder struct {
	rng *rand.Rand
}

// NewResponder creates a responder over the given source of randomness.
func NewResponder(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Reply picks a canned fallback answer.
func (r *Responder) Reply() string {
	return fallbackReplies[r.rng.Intn(len(fallbackReplies))]
}

// Respond returns the intent unchanged unless it is unknown, in which case
// the canned reply plus a pointer at the help command is filled in.
func (r *Responder) Respond(in Intent) Intent {
	if in.Action != ActionUnknown {
		return in
	}
	in.Message = r.Reply() + " Say 'help' for available commands."
	return in
}
