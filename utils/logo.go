package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxLogoSize is 2MB in bytes
	MaxLogoSize = 2 * 1024 * 1024
)

// AllowedLogoExtensions lists the accepted logo file extensions
var AllowedLogoExtensions = []string{".png", ".jpg", ".jpeg"}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateLogoFile validates the uploaded file extension and size
func ValidateLogoFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxLogoSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxLogoSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range AllowedLogoExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &FileUploadError{
		Code:    "INVALID_FILE_FORMAT",
		Message: "Only PNG and JPEG files are allowed",
	}
}

// ReadLogoFile validates and reads an uploaded logo, returning its bytes and
// image format
func ReadLogoFile(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	if err := ValidateLogoFile(fileHeader); err != nil {
		return nil, "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxLogoSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > MaxLogoSize {
		return nil, "", &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxLogoSize/(1024*1024)),
		}
	}

	format, err := DetectLogoFormat(data)
	if err != nil {
		return nil, "", &FileUploadError{Code: "INVALID_FILE_FORMAT", Message: err.Error()}
	}
	return data, format, nil
}

// DetectLogoFormat decodes the image header and returns "PNG" or "JPG"
func DetectLogoFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("not a valid image: %w", err)
	}
	switch format {
	case "png":
		return "PNG", nil
	case "jpeg":
		return "JPG", nil
	}
	return "", fmt.Errorf("unsupported image format %q", format)
}

// DecodeLogoBase64 decodes a stored logo. A data URL prefix such as
// "data:image/png;base64," is accepted.
func DecodeLogoBase64(encoded string) ([]byte, string, error) {
	if i := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, "", fmt.Errorf("logo is not valid base64: %w", err)
	}
	if len(data) > MaxLogoSize {
		return nil, "", fmt.Errorf("logo exceeds %d MB", MaxLogoSize/(1024*1024))
	}
	format, err := DetectLogoFormat(data)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// EncodeLogoBase64 encodes logo bytes for storage
func EncodeLogoBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// LogoContentType maps a logo format to its MIME type
func LogoContentType(format string) string {
	if format == "JPG" {
		return "image/jpeg"
	}
	return "image/png"
}
