package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adenw/flixctl/myflix"
)

var (
	registerUsername string
	registerEmail    string
	registerBirthday string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Log in to myFlix",
	Long: `Authenticate against the myFlix API. On success the bearer token and
your profile are saved locally so subsequent commands run as you.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the saved session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new myFlix account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "username for the new account")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email address")
	registerCmd.Flags().StringVarP(&registerBirthday, "birthday", "b", "", "birthday (YYYY-MM-DD)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
}

// readPassword securely reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	result, err := client.Login(context.Background(), myflix.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", result.User.Username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if store.Token() == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	username := store.Username()
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Printf("Logged out %s\n", username)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	user, err := client.Register(context.Background(), myflix.Registration{
		Username: registerUsername,
		Password: password,
		Email:    registerEmail,
		Birthday: registerBirthday,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s. Run 'flixctl login %s' to sign in.\n", user.Username, user.Username)
	return nil
}
