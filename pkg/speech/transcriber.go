package speech

import (
	"context"
	"io"
	"strings"
)

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe reads the audio payload and returns the recognized text.
	// The filename's extension tells the backend which container it is.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// Containers/codecs the transcription backend accepts. Anything else is
// rejected before the upload leaves this process.
var supportedFormats = []string{"flac", "m4a", "mp3", "mp4", "mpeg", "mpga", "oga", "ogg", "wav", "webm"}

// FormatFromContentType extracts the subtype from a MIME type like
// "audio/webm;codecs=opus" -> "webm".
func FormatFromContentType(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return ""
	}
	subtype, _, _ = strings.Cut(subtype, ";")
	return strings.ToLower(strings.TrimSpace(subtype))
}

// IsSupportedFormat reports whether the container format is on the allow-list.
func IsSupportedFormat(format string) bool {
	for _, f := range supportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// SupportedFormats returns the allow-list for error messages.
func SupportedFormats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}
