package violet_test

import (
	"testing"

	"nabaztag/internal/infra/violet"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := violet.NewCodec()

	encoded, err := codec.EncodeOutbound("été")
	if err != nil {
		t.Fatalf("EncodeOutbound error: %v", err)
	}
	if encoded != "\xe9t\xe9" {
		t.Errorf("encoded: got %q, want %q", encoded, "\xe9t\xe9")
	}

	decoded, err := codec.DecodeInbound([]byte(encoded))
	if err != nil {
		t.Fatalf("DecodeInbound error: %v", err)
	}
	if decoded != "été" {
		t.Errorf("decoded: got %q, want %q", decoded, "été")
	}
}

func TestCodec_UnsupportedRuneReplaced(t *testing.T) {
	codec := violet.NewCodec()

	encoded, err := codec.EncodeOutbound("a→b")
	if err != nil {
		t.Fatalf("EncodeOutbound error: %v", err)
	}
	if len(encoded) != 3 {
		t.Errorf("encoded length: got %d, want 3 (%q)", len(encoded), encoded)
	}
	if encoded[0] != 'a' || encoded[2] != 'b' {
		t.Errorf("encoded: got %q, surrounding characters lost", encoded)
	}
}

func TestCodecForCharset(t *testing.T) {
	for _, name := range []string{"", "iso-8859-1", "Latin1", "windows-1252", "iso-8859-15"} {
		if _, err := violet.CodecForCharset(name); err != nil {
			t.Errorf("CodecForCharset(%q) error: %v", name, err)
		}
	}

	if _, err := violet.CodecForCharset("utf-32"); err == nil {
		t.Error("CodecForCharset(utf-32): expected error, got nil")
	}
}
