package video

import (
	"bytes"
	"testing"
)

func TestEncodeDataURI(t *testing.T) {
	got := EncodeDataURI("image/png", []byte("png!"))
	want := "data:image/png;base64,cG5nIQ=="
	if got != want {
		t.Errorf("EncodeDataURI = %q, want %q", got, want)
	}
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff, 0xfe}
	mimeType, data, err := DecodeDataURI(EncodeDataURI("video/mp4", payload))
	if err != nil {
		t.Fatalf("DecodeDataURI returned error: %v", err)
	}
	if mimeType != "video/mp4" {
		t.Errorf("mime type = %q", mimeType)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload round trip mismatch: %v", data)
	}
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{"no scheme", "https://example.com/video.mp4"},
		{"no base64 marker", "data:video/mp4,plain"},
		{"bad base64", "data:video/mp4;base64,not-base64!!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeDataURI(tc.uri); err == nil {
				t.Errorf("DecodeDataURI(%q) succeeded, want error", tc.uri)
			}
		})
	}
}
