// file: db/vault.go

package db

import (
	"fmt"
	"member-api/config"
	"member-api/logger"

	vault "github.com/hashicorp/vault/api"
)

// ConnectVault creates a Vault client for the transit secrets engine used
// to encrypt files before they reach object storage.
func ConnectVault() (*vault.Client, error) {
	cfg := config.AppConfig.Vault

	vaultCfg := vault.DefaultConfig()
	vaultCfg.Address = cfg.Address

	client, err := vault.NewClient(vaultCfg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create Vault client")
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(cfg.Token)

	logger.Log.WithField("address", cfg.Address).Info("Vault client initialized")
	return client, nil
}
