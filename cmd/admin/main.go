package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage inventory service operators",
	Long: `Creates operator accounts and mints bearer tokens against the same
database and secret the server uses (read from .env or the environment).`,
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create an operator account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		core, _, err := open()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		in := cctv.UserInput{}
		in.Name, _ = flags.GetString("name")
		in.Email, _ = flags.GetString("email")
		in.Password, _ = flags.GetString("password")
		in.Role, _ = flags.GetString("role")

		id, err := createUser(cmd.Context(), core, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for an operator",
	RunE: func(cmd *cobra.Command, _ []string) error {
		core, tokens, err := open()
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		token, err := mintToken(cmd.Context(), core, tokens, email, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	flags := createUserCmd.Flags()
	flags.String("name", "", "display name")
	flags.String("email", "", "login email")
	flags.String("password", "", "initial password")
	flags.String("role", auth.RoleAdmin, "admin or user")
	_ = createUserCmd.MarkFlagRequired("name")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")

	flags = tokenCmd.Flags()
	flags.String("email", "", "login email")
	flags.String("password", "", "password")
	_ = tokenCmd.MarkFlagRequired("email")
	_ = tokenCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd, tokenCmd)
}

func open() (*cctv.CCTV, *auth.TokenManager, error) {
	cfg, err := common.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	dialector, err := db.DialectorFor(cfg.DBType, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := auth.NewTokenManager(cfg.JwtSecret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, nil, err
	}
	return cctv.New(db.GetInstance(dialector)), tokens, nil
}

func createUser(ctx context.Context, core *cctv.CCTV, in cctv.UserInput) (string, error) {
	if issues := cctv.ValidateUserInput(&in); len(issues) > 0 {
		return "", fmt.Errorf("%s: %s", issues[0].Path, issues[0].Message)
	}
	user, err := core.User.CreateUser(ctx, in)
	if err != nil {
		return "", err
	}
	common.GetLogger().Info("Operator created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user.ID, nil
}

func mintToken(ctx context.Context, core *cctv.CCTV, tokens *auth.TokenManager, email, password string) (string, error) {
	user, err := core.User.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return tokens.Issue(user.ID, user.Role)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
