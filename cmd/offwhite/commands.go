package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mobilecarebd/off-white/internal/phone"
	"github.com/mobilecarebd/off-white/internal/session"
)

type storeFactory func() (*session.Store, error)

func loginCmd(newStore storeFactory) *cobra.Command {
	var logoutAfter bool

	cmd := &cobra.Command{
		Use:   "login <phone> <password>",
		Short: "Authenticate and print the resulting session state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}

			// Numbers are normalized here, before the credential leaves
			// the client; the store passes them through untouched.
			result := store.Login(cmd.Context(), phone.Normalize(args[0]), args[1])
			if !result.Success {
				return errors.New(result.Error)
			}

			user := store.User()
			fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Phone)
			if result.IsAdmin {
				fmt.Println("Role: admin")
			}

			if logoutAfter {
				if err := store.Logout(cmd.Context()); err != nil {
					return fmt.Errorf("logout: %w", err)
				}
				fmt.Println("Logged out")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&logoutAfter, "logout", false, "Log out again after a successful login")
	return cmd
}

func registerCmd(newStore storeFactory) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register <name> <phone> <password>",
		Short: "Create an account and open a session",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}

			result := store.Register(cmd.Context(), args[0], phone.Normalize(args[1]), email, args[2])
			if !result.Success {
				return errors.New(result.Error)
			}

			fmt.Printf("Registered %s\n", store.User().Phone)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Optional email address")
	return cmd
}

func whoamiCmd(newStore storeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Resolve the ambient session, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore()
			if err != nil {
				return err
			}

			store.Initialize(cmd.Context())
			if !store.IsAuthenticated() {
				fmt.Println("Not authenticated")
				return nil
			}

			user := store.User()
			fmt.Printf("%s (%s)\n", user.Name, user.Phone)
			if store.IsAdmin() {
				fmt.Println("Role: admin")
			}
			return nil
		},
	}
}
