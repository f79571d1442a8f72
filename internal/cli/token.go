package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gdugdh24/roommate-backend/internal/usecase/auth"
)

func newTokenCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token USER_ID",
		Short: "Mint a development bearer token for USER_ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := &config.JWTConfig{
				Secret:    rt.v.GetString("jwt-secret"),
				Issuer:    rt.v.GetString("jwt-issuer"),
				ExpiryMin: rt.v.GetInt("jwt-expiry-min"),
			}
			if cfg.Secret == "" {
				return errors.New("JWT secret is required: pass --secret or set JWT_SECRET")
			}

			token, expiresAt, err := auth.NewTokenService(cfg).Issue(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(rt.out, token)
			rt.log.Info("token issued",
				zap.String("user_id", args[0]),
				zap.Time("expires_at", expiresAt),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("secret", "", "HS256 signing secret (env JWT_SECRET)")
	flags.String("issuer", "roommate-backend", "token issuer (env JWT_ISSUER)")
	flags.Int("ttl", 60, "lifetime in minutes (env JWT_EXPIRY_MIN)")

	_ = rt.v.BindPFlag("jwt-secret", flags.Lookup("secret"))
	_ = rt.v.BindPFlag("jwt-issuer", flags.Lookup("issuer"))
	_ = rt.v.BindPFlag("jwt-expiry-min", flags.Lookup("ttl"))
	_ = rt.v.BindEnv("jwt-secret", "JWT_SECRET")
	_ = rt.v.BindEnv("jwt-issuer", "JWT_ISSUER")
	_ = rt.v.BindEnv("jwt-expiry-min", "JWT_EXPIRY_MIN")
	return cmd
}
