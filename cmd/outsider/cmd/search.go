package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atulub35/outsider-client-go/internal/search"
)

const searchTimeout = 10 * time.Second

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search posts and users",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	container := newContainer(cmd.Context())
	defer container.Search.Close()

	committed := make(chan search.ResultSet, 1)
	container.Search.Subscribe(func(results search.ResultSet) {
		select {
		case committed <- results:
		default:
		}
	})

	container.Search.SetQuery(cmd.Context(), args[0])

	select {
	case results := <-committed:
		printResults(results)
	case <-time.After(searchTimeout):
		state := container.PostsCallState.ErrorMessage()
		if state == "" {
			state = container.UsersCallState.ErrorMessage()
		}
		if state != "" {
			return errors.New(state)
		}
		return errors.New("search timed out")
	}

	return nil
}

func printResults(results search.ResultSet) {
	if len(results.Posts) == 0 && len(results.Users) == 0 {
		fmt.Println("no results found")
		return
	}

	if len(results.Posts) > 0 {
		fmt.Println("posts:")
		for _, p := range results.Posts {
			printPost(p)
		}
	}
	if len(results.Users) > 0 {
		fmt.Println("users:")
		for _, u := range results.Users {
			fmt.Printf("%s  %-20s  %s\n", u.ID, u.Name, u.Email)
		}
	}
}
