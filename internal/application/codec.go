package application

// Codec transcodes between the caller's text and the service charset.
type Codec interface {
	EncodeOutbound(text string) (string, error)
	DecodeInbound(raw []byte) (string, error)
}

// RawCodec performs no transcoding, for test doubles and services that
// already speak the caller's charset.
type RawCodec struct{}

func (RawCodec) EncodeOutbound(text string) (string, error) {
	return text, nil
}

func (RawCodec) DecodeInbound(raw []byte) (string, error) {
	return string(raw), nil
}
