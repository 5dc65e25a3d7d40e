// Command devtoken prints a bearer token accepted by a locally running API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	userID := pflag.StringP("user", "u", "dev-user", "user ID placed in the token subject")
	ttl := pflag.DurationP("ttl", "t", 24*time.Hour, "token lifetime")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction {
		slog.Error("Refusing to mint a dev token with IS_PRODUCTION set")
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, *ttl, utils.DevTokenIssuer)
	if err != nil {
		slog.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
