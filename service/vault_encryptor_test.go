package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	vault "github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeTransitServer stands in for the Vault transit engine: encrypt wraps
// the base64 plaintext in a vault:v1: prefix, decrypt unwraps it.
func newFakeTransitServer(t *testing.T) *vault.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/transit/encrypt/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		plaintext, _ := body["plaintext"].(string)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"ciphertext": "vault:v1:" + plaintext,
			},
		})
	})
	mux.HandleFunc("/v1/transit/decrypt/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		ciphertext, _ := body["ciphertext"].(string)
		if !strings.HasPrefix(ciphertext, "vault:v1:") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"errors": []string{"invalid ciphertext"}})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"plaintext": strings.TrimPrefix(ciphertext, "vault:v1:"),
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	config := vault.DefaultConfig()
	config.Address = srv.URL
	client, err := vault.NewClient(config)
	require.NoError(t, err)
	client.SetToken("test-token")
	return client
}

func TestVaultEncryptor_RoundTrip(t *testing.T) {
	encryptor := NewVaultEncryptor(newFakeTransitServer(t), "member-files")
	ctx := context.Background()

	ciphertext, err := encryptor.Encrypt(ctx, []byte("confidential payload"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ciphertext, "vault:v1:"), "got %q", ciphertext)

	plaintext, err := encryptor.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("confidential payload"), plaintext)
}

func TestVaultEncryptor_DecryptRejectsBadCiphertext(t *testing.T) {
	encryptor := NewVaultEncryptor(newFakeTransitServer(t), "member-files")

	_, err := encryptor.Decrypt(context.Background(), "not-a-transit-blob")
	assert.Error(t, err)
}

func TestVaultEncryptor_ExtractKeyVersion(t *testing.T) {
	encryptor := &VaultEncryptor{}

	assert.Equal(t, "v1", encryptor.ExtractKeyVersion("vault:v1:abcdef"))
	assert.Equal(t, "v12", encryptor.ExtractKeyVersion("vault:v12:abcdef"))
	assert.Equal(t, "unknown", encryptor.ExtractKeyVersion("no-version-here"))
	assert.Equal(t, "unknown", encryptor.ExtractKeyVersion(""))
	assert.Equal(t, "unknown", encryptor.ExtractKeyVersion("vault::abc"))
}
