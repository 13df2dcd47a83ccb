package main

import (
	"errors"
	"fmt"

	"cardflow/internal/auth"
	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/spf13/cobra"
)

func (a *app) registerCmd() *cobra.Command {
	var email, name, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a local account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			user := &model.User{Email: email, Name: name, PasswordHash: &hash}
			if err := a.repos.Users.Create(cmd.Context(), user); err != nil {
				if errors.Is(err, repository.ErrEmailTaken) {
					return fmt.Errorf("email %s is already registered", email)
				}
				return err
			}
			if err := a.repos.Settings.Set(cmd.Context(), sessionKey, user.UserID); err != nil {
				return err
			}
			a.printf("registered %s (%s)\n", user.Email, user.UserID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.repos.Users.FindByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			if user == nil || !user.HasPassword() || !auth.CheckPassword(*user.PasswordHash, password) {
				return errors.New("invalid credentials")
			}
			if err := a.repos.Settings.Set(cmd.Context(), sessionKey, user.UserID); err != nil {
				return err
			}
			a.printf("logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repos.Settings.Delete(cmd.Context(), sessionKey)
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.repos.Users.GetByID(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if user == nil {
				return errNotLoggedIn
			}
			return a.printJSON(user)
		},
	}
}
