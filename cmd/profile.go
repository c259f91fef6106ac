package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adenw/flixctl/myflix"
	"github.com/adenw/flixctl/session"
)

var (
	updateEmail    string
	updateBirthday string
	deleteYes      bool
)

// profileCmd represents the profile command group
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and manage your myFlix profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and favorite movies",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Long: `Update the email, birthday, or password of your myFlix account. The
server replaces the profile wholesale, so the password must be re-entered on
every update.`,
	Args: cobra.NoArgs,
	RunE: runProfileUpdate,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your myFlix account",
	Args:  cobra.NoArgs,
	RunE:  runProfileDelete,
}

func init() {
	profileUpdateCmd.Flags().StringVarP(&updateEmail, "email", "e", "", "new email address")
	profileUpdateCmd.Flags().StringVarP(&updateBirthday, "birthday", "b", "", "new birthday (YYYY-MM-DD)")

	profileDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// The profile and the catalog are independent fetches; run them together
	// so favorite ids can be resolved to titles in one pass.
	var (
		user   *session.User
		movies []myflix.Movie
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = client.GetUser(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = client.ListMovies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	if !user.Birthday.IsZero() {
		fmt.Printf("Birthday: %s\n", user.Birthday.Format("2006-01-02"))
	}

	favorites := make(map[string]bool, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		favorites[id] = true
	}

	fmt.Printf("\nFavorite movies (%d):\n", len(user.FavoriteMovies))
	for _, movie := range movies {
		if favorites[movie.ID] {
			fmt.Printf("  ★ %s\n", movie.Title)
		}
	}

	// Keep the cached profile in step with what the server just told us.
	if err := store.SetUser(*user); err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh cached session")
	}
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	user, ok := store.User()
	if !ok {
		return fmt.Errorf("not logged in")
	}

	email := user.Email
	if updateEmail != "" {
		email = updateEmail
	}

	birthday := ""
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format("2006-01-02")
	}
	if updateBirthday != "" {
		birthday = updateBirthday
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	updated, err := client.UpdateUser(context.Background(), myflix.ProfileUpdate{
		Username: user.Username,
		Password: password,
		Email:    email,
		Birthday: birthday,
	})
	if err != nil {
		return err
	}

	// The client leaves the session refresh to the caller.
	if err := store.SetUser(*updated); err != nil {
		return fmt.Errorf("failed to refresh cached session: %w", err)
	}

	fmt.Println("Profile updated.")
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	username := store.Username()
	if username == "" {
		return fmt.Errorf("not logged in")
	}

	if !deleteYes {
		fmt.Printf("This permanently deletes the account %q. Type the username to confirm: ", username)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != username {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := client.DeleteUser(context.Background()); err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("account deleted but failed to clear session: %w", err)
	}

	fmt.Println("Account deleted.")
	return nil
}
