// file: model/file.go

package model

import "time"

// FileMetadata describes an encrypted file stored in object storage.
// The checksum is computed over the plaintext before encryption.
type FileMetadata struct {
	ID              int64     `json:"id"`
	Filename        string    `json:"filename"`
	ContentType     string    `json:"content_type"`
	Size            int64     `json:"size"`
	Checksum        string    `json:"checksum"`
	StoragePath     string    `json:"storage_path"`
	VaultKeyVersion string    `json:"vault_key_version"`
	UploadedBy      string    `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
}
