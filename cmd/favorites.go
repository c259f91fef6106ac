package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// favoritesCmd represents the favorites command group
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your favorite movies",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ids in your favorites set",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add MOVIEID",
	Short: "Add a movie to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove MOVIEID",
	Short: "Remove a movie from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	favorites, err := client.GetFavorites(context.Background())
	if err != nil {
		return err
	}

	if len(favorites) == 0 {
		fmt.Println("No favorite movies yet.")
		return nil
	}

	for _, id := range favorites {
		fmt.Println(id)
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	movieID := args[0]

	if err := client.AddFavorite(context.Background(), movieID); err != nil {
		return err
	}

	fmt.Printf("Added %s to favorites.\n", movieID)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	movieID := args[0]

	if err := client.RemoveFavorite(context.Background(), movieID); err != nil {
		return err
	}

	fmt.Printf("Removed %s from favorites.\n", movieID)
	return nil
}
