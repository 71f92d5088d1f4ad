package app

import (
	"strings"

	"github.com/mgorski/filecat/models"

	"github.com/gabriel-vasile/mimetype"
)

// Classify sniffs the file's content to decide its media type. The filename
// extension is deliberately ignored here; a renamed .jpg still classifies
// as an image.
func Classify(path string) (models.MediaType, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return models.MediaOther, err
	}

	switch {
	case mt.Is("application/pdf"):
		return models.MediaPDF, nil
	case strings.HasPrefix(mt.String(), "image/"):
		return models.MediaImage, nil
	default:
		return models.MediaOther, nil
	}
}
