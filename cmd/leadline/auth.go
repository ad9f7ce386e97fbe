package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/session"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend session",
		Long:  `Log in to the CRM backend, inspect the current session, or log out.`,
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authWhoamiCmd())

	return cmd
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save a session",
		RunE:  runAuthLogin,
	}

	cmd.Flags().String("email", "", "account email (prompted when omitted)")

	return cmd
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		fmt.Print("Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	client, _, err := newClient(false)
	if err != nil {
		return err
	}

	token, err := client.Login(ctx, email, string(password))
	if err != nil {
		return common.NewUserError("login failed - check your email and password", err)
	}

	// Fetch the profile with the fresh credential so whoami works
	// offline.
	sess := &session.Session{Token: token, CreatedAt: time.Now()}
	authed := client.WithSession(sess)
	user, err := authed.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	sess.User = user

	store, err := session.NewStore()
	if err != nil {
		return err
	}
	if err := store.Save(sess); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s (%s)", user.Name, user.Role)))
	return nil
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the saved session",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func authWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			sess, err := store.Load()
			if err != nil {
				return common.NewUserError("not logged in", err)
			}

			fmt.Println(cli.FormatTitle("Session"))
			fmt.Printf("  Name:  %s\n", sess.User.Name)
			fmt.Printf("  Email: %s\n", sess.User.Email)
			fmt.Printf("  Role:  %s\n", sess.User.Role)
			fmt.Printf("  Since: %s\n", sess.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}
