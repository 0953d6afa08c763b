package speech

import "testing"

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"audio/webm", "webm"},
		{"audio/webm;codecs=opus", "webm"},
		{"audio/mpeg", "mpeg"},
		{"AUDIO/WAV", "wav"},
		{"noslash", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatFromContentType(tt.contentType); got != tt.want {
			t.Errorf("FormatFromContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, format := range []string{"flac", "m4a", "mp3", "mp4", "mpeg", "mpga", "oga", "ogg", "wav", "webm"} {
		if !IsSupportedFormat(format) {
			t.Errorf("%q should be supported", format)
		}
	}
	for _, format := range []string{"aiff", "wma", "opus", "", "text"} {
		if IsSupportedFormat(format) {
			t.Errorf("%q should not be supported", format)
		}
	}
}
