package serde

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrOddTokens = errors.New("serde: key without a value")

// Format describes how a record is laid out as text. The game uses the same
// character for both separators in every format it has, but nothing here
// relies on that.
type Format struct {
	// Between a key and its value
	Separator string
	// Between two key/value pairs
	PairSeparator string
}

// Pair is one key and its still-encoded value.
type Pair struct {
	Key   int
	Value string
}

type KeyError struct {
	Token string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("serde: invalid key %q", e.Token)
}

func parseKey(token string) (int, error) {
	key, err := strconv.Atoi(token)
	if err != nil || key < 0 {
		return 0, &KeyError{Token: token}
	}
	return key, nil
}

// Tokenize splits text into its pairs in the order they appear.
func (f Format) Tokenize(text string) ([]Pair, error) {
	if text == "" {
		return nil, nil
	}

	if f.Separator == f.PairSeparator {
		tokens := strings.Split(text, f.Separator)
		if len(tokens)%2 != 0 {
			return nil, fmt.Errorf("%w: %d tokens", ErrOddTokens, len(tokens))
		}

		pairs := make([]Pair, 0, len(tokens)/2)
		for i := 0; i < len(tokens); i += 2 {
			key, err := parseKey(tokens[i])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: tokens[i+1]})
		}
		return pairs, nil
	}

	chunks := strings.Split(text, f.PairSeparator)
	pairs := make([]Pair, 0, len(chunks))
	for _, chunk := range chunks {
		rawKey, value, ok := strings.Cut(chunk, f.Separator)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrOddTokens, chunk)
		}

		key, err := parseKey(rawKey)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// Detokenize joins pairs back into text, keeping their order.
func (f Format) Detokenize(pairs []Pair) string {
	var builder strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			builder.WriteString(f.PairSeparator)
		}
		builder.WriteString(strconv.Itoa(pair.Key))
		builder.WriteString(f.Separator)
		builder.WriteString(pair.Value)
	}
	return builder.String()
}
