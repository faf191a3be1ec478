package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateAssetToken returns a collision-resistant token used to build
// stored asset filenames. Two uploads of the same original file never
// collide on disk.
func GenerateAssetToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate asset token: %w", err)
	}
	return id.String(), nil
}
