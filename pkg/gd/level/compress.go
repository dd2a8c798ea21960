package level

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Every gzip stream starts with 1f 8b 08, which is H4sI in base64.
const compressedPrefix = "H4sI"

func IsCompressed(data string) bool {
	return strings.HasPrefix(strings.TrimSpace(data), compressedPrefix)
}

// Compress gzips text and encodes it with URL-safe base64, the way the game
// stores level strings.
func Compress(text string) (string, error) {
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write([]byte(text)); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buffer.Bytes()), nil
}

func Decompress(data string) (string, error) {
	data = strings.TrimSpace(data)

	// Some tools strip the padding
	raw, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
		if err != nil {
			return "", fmt.Errorf("level: invalid base64: %w", err)
		}
	}

	reader, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("level: invalid gzip: %w", err)
	}
	defer reader.Close()

	text, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("level: invalid gzip: %w", err)
	}
	return string(text), nil
}
