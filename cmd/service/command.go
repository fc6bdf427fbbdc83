package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorlea-ink/gorlea/app/core"
	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/app/logic/v1/process"
	"github.com/gorlea-ink/gorlea/pkg/security"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "journal service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	process.NewProcess(app).Start()
	serve(app)

	return nil
}

// NewTokenCommand mints a signed bearer token for a user id, accepted on the
// Authorization header as an alternative to opaque access tokens.
func NewTokenCommand() *cobra.Command {
	opts := &Options{}
	var userID string
	var ttlHours int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "generate a signed token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := core.MustLoadBaseConfig(opts.ConfigPath)
			if cfg.Security.PrivateKey == "" {
				return fmt.Errorf("security.private_key is not configured")
			}

			expiresAt := time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix()
			token, err := security.GenerateJWT(security.NewTokenClaims("gorlea", userID, expiresAt), []byte(cfg.Security.PrivateKey))
			if err != nil {
				return err
			}
			fmt.Println("token:", token)
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id to sign the token for")
	cmd.Flags().IntVar(&ttlHours, "ttl", 24, "token lifetime in hours")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// NewInitCommand bootstraps the first admin account and prints its token.
func NewInitCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "initialize admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			token, err := v1.NewAuthLogic(context.Background(), app).InitAdminUser()
			if err != nil {
				return err
			}
			fmt.Println("admin access token:", token)
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}
