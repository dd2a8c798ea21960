package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cfoust/gdlevel/pkg/gd/api"
)

const (
	headerSeparator  = ","
	channelSeparator = "|"

	// The header key holding the level's color table
	ColorsKey = "kS38"
)

var ErrHeader = errors.New("level: malformed header")

type headerPair struct {
	key   string
	value string
}

// Header is the first section of a level string. Its keys are strings like
// "kA13"; everything is kept verbatim and in order.
type Header struct {
	pairs []headerPair
}

func ParseHeader(text string) (*Header, error) {
	header := &Header{}
	if text == "" {
		return header, nil
	}

	tokens := strings.Split(text, headerSeparator)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: %d tokens", ErrHeader, len(tokens))
	}

	for i := 0; i < len(tokens); i += 2 {
		if tokens[i] == "" {
			return nil, fmt.Errorf("%w: empty key at token %d", ErrHeader, i)
		}
		header.pairs = append(header.pairs, headerPair{tokens[i], tokens[i+1]})
	}
	return header, nil
}

func (h *Header) Get(key string) (string, bool) {
	for _, pair := range h.pairs {
		if pair.key == key {
			return pair.value, true
		}
	}
	return "", false
}

// Set replaces the value of key, or appends it if it is new.
func (h *Header) Set(key string, value string) {
	for i, pair := range h.pairs {
		if pair.key == key {
			h.pairs[i].value = value
			return
		}
	}
	h.pairs = append(h.pairs, headerPair{key, value})
}

func (h *Header) Len() int {
	return len(h.pairs)
}

func (h *Header) Copy() *Header {
	return &Header{pairs: append([]headerPair(nil), h.pairs...)}
}

func (h *Header) String() string {
	parts := make([]string, 0, len(h.pairs)*2)
	for _, pair := range h.pairs {
		parts = append(parts, pair.key, pair.value)
	}
	return strings.Join(parts, headerSeparator)
}

// Colors decodes the level's color table.
func (h *Header) Colors() ([]*api.ColorChannel, error) {
	value, ok := h.Get(ColorsKey)
	if !ok {
		return nil, nil
	}

	var channels []*api.ColorChannel
	for i, text := range strings.Split(value, channelSeparator) {
		if text == "" {
			continue
		}

		channel, err := api.ColorChannelFromString(text)
		if err != nil {
			return nil, fmt.Errorf("color channel %d: %w", i, err)
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

func (h *Header) SetColors(channels []*api.ColorChannel) error {
	var builder strings.Builder
	for _, channel := range channels {
		text, err := channel.Dump()
		if err != nil {
			return err
		}
		builder.WriteString(text)
		builder.WriteString(channelSeparator)
	}
	h.Set(ColorsKey, builder.String())
	return nil
}
