package util

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/google/uuid"
)

// HashUUID folds raw bytes into a stable UUID string
func HashUUID(raw []byte) string {
	hash := md5.Sum(raw)
	id, err := uuid.FromBytes(hash[:])
	if err != nil {
		return ""
	}
	return id.String()
}

// NewUniqueID returns a random 128-bit id as 32 hex characters, the
// layout EXIF uses for ImageUniqueID
func NewUniqueID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
