package health

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users and the active session",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Register a username and log in as it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		return withStore(cmd, func(e *env) error {
			reg, err := e.registry()
			if err != nil {
				return err
			}
			if err := reg.Create(name); err != nil {
				if errors.Is(err, session.ErrUserExists) {
					return fmt.Errorf("username %q already exists, choose a different username", name)
				}
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s and logged in\n", name)
			return nil
		})
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as a registered username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		return withStore(cmd, func(e *env) error {
			reg, err := e.registry()
			if err != nil {
				return err
			}
			if err := reg.Login(name); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		})
	},
}

var userLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(e *env) error {
			reg, err := e.registry()
			if err != nil {
				return err
			}
			reg.Logout()
			if err := reg.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

var userWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			fmt.Fprintln(cmd.OutOrStdout(), sess.Username)
			return nil
		})
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered usernames",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(e *env) error {
			reg, err := e.registry()
			if err != nil {
				return err
			}
			current, _ := reg.Current()
			for _, u := range reg.Users() {
				marker := " "
				if u == current.Username {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, u)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userLogoutCmd)
	userCmd.AddCommand(userWhoamiCmd)
	userCmd.AddCommand(userListCmd)
}
