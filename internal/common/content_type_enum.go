package common

import (
	"fmt"
	"mime"
	"strings"
	"time"
)

// MediaFileType represents the media classes accepted for upload
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

// String returns the string representation
func (mft MediaFileType) String() string {
	return string(mft)
}

// IsValid checks if the media file type is valid
func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType classifies a MIME type as image or video. Anything else is
// rejected with ErrUnsupportedMedia before a command is ever built.
func DetectFileType(mimeType string) (MediaFileType, error) {
	lowerMimeType := strings.ToLower(strings.TrimSpace(mimeType))
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaFileTypeImage, nil
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo, nil
	}
	return "", fmt.Errorf("%q: %w", mimeType, ErrUnsupportedMedia)
}

// MediaExtension maps a MIME type to a file extension for object keys
func MediaExtension(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// MediaKey builds the object-store key for an upload:
// {authorId-lowercased}/{timestamp}-{authorId-lowercased}{extension}
func MediaKey(authorID, mimeType string, now time.Time) string {
	author := strings.ToLower(authorID)
	fileName := now.Format(time.RFC3339Nano) + "-" + author + MediaExtension(mimeType)
	return author + "/" + fileName
}
