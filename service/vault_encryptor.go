// file: service/vault_encryptor.go

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"member-api/logger"
	"strings"

	vault "github.com/hashicorp/vault/api"
)

// IEncryptor is the envelope-encryption contract used by the file service.
type IEncryptor interface {
	Encrypt(ctx context.Context, data []byte) (string, error)
	Decrypt(ctx context.Context, ciphertext string) ([]byte, error)
	ExtractKeyVersion(ciphertext string) string
}

// VaultEncryptor encrypts and decrypts data through the Vault transit
// secrets engine. Ciphertexts carry the vault:vN: prefix.
type VaultEncryptor struct {
	client  *vault.Client
	keyName string
}

func NewVaultEncryptor(client *vault.Client, keyName string) *VaultEncryptor {
	return &VaultEncryptor{client: client, keyName: keyName}
}

func (e *VaultEncryptor) Encrypt(ctx context.Context, data []byte) (string, error) {
	path := fmt.Sprintf("transit/encrypt/%s", e.keyName)
	secret, err := e.client.Logical().WriteWithContext(ctx, path, map[string]interface{}{
		"plaintext": base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		logger.Log.WithError(err).Error("Vault encryption failed")
		return "", fmt.Errorf("failed to encrypt data: %w", err)
	}

	ciphertext, ok := secret.Data["ciphertext"].(string)
	if !ok {
		return "", errors.New("vault response is missing ciphertext")
	}
	return ciphertext, nil
}

func (e *VaultEncryptor) Decrypt(ctx context.Context, ciphertext string) ([]byte, error) {
	path := fmt.Sprintf("transit/decrypt/%s", e.keyName)
	secret, err := e.client.Logical().WriteWithContext(ctx, path, map[string]interface{}{
		"ciphertext": ciphertext,
	})
	if err != nil {
		logger.Log.WithError(err).Error("Vault decryption failed")
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	encoded, ok := secret.Data["plaintext"].(string)
	if !ok {
		return nil, errors.New("vault response is missing plaintext")
	}
	plaintext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode vault plaintext: %w", err)
	}
	return plaintext, nil
}

// ExtractKeyVersion returns the key version segment of a transit ciphertext,
// e.g. "vault:v1:..." yields "v1".
func (e *VaultEncryptor) ExtractKeyVersion(ciphertext string) string {
	parts := strings.Split(ciphertext, ":")
	if len(parts) >= 2 && parts[1] != "" {
		return parts[1]
	}
	return "unknown"
}
