package convert

import (
	"errors"
	"fmt"
)

// TokensPerRequest is the size of one request triple.
const TokensPerRequest = 3

// ErrMalformedRequest is returned when the token list cannot be grouped
// into triples.
var ErrMalformedRequest = errors.New("error processing conversion parameters")

// Request asks for one source collection to be converted.
type Request struct {
	// Kind is zero when TypeName is not recognized.
	Kind       EntityKind
	TypeName   string
	Collection string
	// Destination is carried for the caller; conversion does not use it.
	Destination string
}

// ParseRequests groups tokens into triples. Unrecognized type names are
// kept with a zero Kind so the dispatcher can report them in order.
func ParseRequests(tokens []string) ([]Request, error) {
	if len(tokens)%TokensPerRequest != 0 {
		return nil, fmt.Errorf("%w: %d arguments per collection expected, got %d tokens",
			ErrMalformedRequest, TokensPerRequest, len(tokens))
	}

	reqs := make([]Request, 0, len(tokens)/TokensPerRequest)
	for i := 0; i < len(tokens); i += TokensPerRequest {
		kind, _ := ParseEntityKind(tokens[i])
		reqs = append(reqs, Request{
			Kind:        kind,
			TypeName:    tokens[i],
			Collection:  tokens[i+1],
			Destination: tokens[i+2],
		})
	}

	return reqs, nil
}
