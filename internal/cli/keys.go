package cli

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"
)

const (
	hashKeyLength  = 64
	blockKeyLength = 32
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Generate SESSION_HASH_KEY and SESSION_BLOCK_KEY values (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			hashKey, blockKey, err := generateSessionKeys()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "export SESSION_HASH_KEY=%s\n", hashKey)
			fmt.Fprintf(cmd.OutOrStdout(), "export SESSION_BLOCK_KEY=%s\n", blockKey)
			return nil
		},
	}
}

// generateSessionKeys возвращает ключи подписи и шифрования cookie в base64
func generateSessionKeys() (hashKey, blockKey string, err error) {
	hash := securecookie.GenerateRandomKey(hashKeyLength)
	block := securecookie.GenerateRandomKey(blockKeyLength)
	if hash == nil || block == nil {
		return "", "", errors.New("failed to generate random keys")
	}

	return base64.StdEncoding.EncodeToString(hash), base64.StdEncoding.EncodeToString(block), nil
}
