package impl

import (
	"io"
	"log/slog"

	"store/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAddresses int) *config.Config {
	return &config.Config{
		User: &config.UserConfig{
			Address: config.AddressConfig{
				MaxCount: maxAddresses,
			},
		},
	}
}
