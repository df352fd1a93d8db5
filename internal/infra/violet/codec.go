package violet

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Codec transcodes between UTF-8 and the legacy single-byte charset the
// service speaks. The charset is an explicit construction parameter, not
// process-global state.
type Codec struct {
	charset *charmap.Charmap
}

// NewCodec returns a codec for the service's default charset, ISO 8859-1.
func NewCodec() *Codec {
	return &Codec{charset: charmap.ISO8859_1}
}

func NewCodecWithCharset(charset *charmap.Charmap) *Codec {
	return &Codec{charset: charset}
}

// CodecForCharset maps a configuration charset name to a codec. An empty
// name selects the default.
func CodecForCharset(name string) (*Codec, error) {
	switch strings.ToLower(name) {
	case "", "iso-8859-1", "latin1":
		return NewCodec(), nil
	case "iso-8859-15", "latin9":
		return NewCodecWithCharset(charmap.ISO8859_15), nil
	case "windows-1252", "cp1252":
		return NewCodecWithCharset(charmap.Windows1252), nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
}

// EncodeOutbound transcodes caller text to the service charset. Runes the
// charset cannot represent are replaced rather than rejected, since the
// service keeps extending what it accepts.
func (c *Codec) EncodeOutbound(text string) (string, error) {
	encoded, err := encoding.ReplaceUnsupported(c.charset.NewEncoder()).String(text)
	if err != nil {
		return "", fmt.Errorf("encoding for service charset: %w", err)
	}
	return encoded, nil
}

// DecodeInbound transcodes service reply bytes to caller text.
func (c *Codec) DecodeInbound(raw []byte) (string, error) {
	decoded, err := c.charset.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding service charset: %w", err)
	}
	return string(decoded), nil
}
