package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adenw/flixctl/filter"
	"github.com/adenw/flixctl/myflix"
)

var filterExpr string

// moviesCmd represents the movies command group
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse the movie catalog",
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies in the catalog",
	Long: `List all movies in the myFlix catalog. An optional filter expression
narrows the list, e.g.:

  flixctl movies list --filter 'genre == "Thriller"'
  flixctl movies list --filter 'contains(director, "kubrick") and featured'
  flixctl movies list --filter 'favorite'`,
	Args: cobra.NoArgs,
	RunE: runMoviesList,
}

var moviesInfoCmd = &cobra.Command{
	Use:   "info TITLE",
	Short: "Show full details for one movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoviesInfo,
}

func init() {
	moviesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	moviesCmd.AddCommand(moviesListCmd)
	moviesCmd.AddCommand(moviesInfoCmd)
}

func runMoviesList(cmd *cobra.Command, args []string) error {
	var movieFilter *filter.Filter
	if filterExpr != "" {
		var err error
		movieFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	movies, err := client.ListMovies(context.Background())
	if err != nil {
		return err
	}

	var shown int
	for _, movie := range movies {
		favorite := client.IsFavorite(movie.ID)

		if movieFilter != nil {
			matched, err := movieFilter.Matches(movie, favorite)
			if err != nil {
				return err
			}
			if !matched {
				continue
			}
		}

		marker := " "
		if favorite {
			marker = "★"
		}
		fmt.Printf("%s %s — %s (%s)\n", marker, movie.Title, movie.Director.Name, movie.Genre.Name)
		shown++
	}

	if shown == 0 {
		fmt.Println("No movies found.")
	}
	return nil
}

func runMoviesInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	movie, err := client.GetMovie(ctx, args[0])
	if err != nil {
		return err
	}

	// The director bio and genre description live behind separate endpoints;
	// fetch both at once.
	var (
		director *myflix.Director
		genre    *myflix.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		director, err = client.GetDirector(gctx, movie.Director.Name)
		return err
	})
	g.Go(func() error {
		var err error
		genre, err = client.GetGenre(gctx, movie.Genre.Name)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(movie.Title)
	fmt.Println(strings.Repeat("-", len(movie.Title)))
	fmt.Printf("%s\n\n", movie.Description)
	fmt.Printf("Genre:    %s — %s\n", genre.Name, genre.Description)
	fmt.Printf("Director: %s — %s\n", director.Name, director.Bio)
	if len(movie.Actors) > 0 {
		fmt.Printf("Actors:   %s\n", strings.Join(movie.Actors, ", "))
	}
	if movie.Featured {
		fmt.Println("Featured")
	}
	if client.IsFavorite(movie.ID) {
		fmt.Println("★ In your favorites")
	}
	return nil
}
