package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atulub35/outsider-client-go/internal/post"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse and manage the posts feed",
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, optionally filtered by a query",
	RunE:  runFeedList,
}

var feedCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	RunE:  runFeedCreate,
}

var feedLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle a like on a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedLike,
}

var feedDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedDelete,
}

func init() {
	feedListCmd.Flags().String("query", "", "filter posts by query")

	feedCreateCmd.Flags().String("title", "", "post title")
	feedCreateCmd.Flags().String("content", "", "post content")
	_ = feedCreateCmd.MarkFlagRequired("title")
	_ = feedCreateCmd.MarkFlagRequired("content")

	feedCmd.AddCommand(feedListCmd, feedCreateCmd, feedLikeCmd, feedDeleteCmd)
	rootCmd.AddCommand(feedCmd)
}

func runFeedList(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	query, _ := cmd.Flags().GetString("query")
	if err := container.Feed.Refresh(cmd.Context(), query); err != nil {
		return err
	}

	for _, p := range container.Feed.Posts() {
		printPost(p)
	}
	return nil
}

func runFeedCreate(cmd *cobra.Command, _ []string) error {
	container := newContainer(cmd.Context())

	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")

	created, err := container.Feed.Create(cmd.Context(), post.Draft{Title: title, Content: content})
	if err != nil {
		return err
	}

	fmt.Printf("created post %s\n", created.ID)
	return nil
}

func runFeedLike(cmd *cobra.Command, args []string) error {
	container := newContainer(cmd.Context())

	if err := container.Feed.Refresh(cmd.Context(), ""); err != nil {
		return err
	}
	if err := container.Feed.ToggleLike(cmd.Context(), args[0]); err != nil {
		return err
	}

	for _, p := range container.Feed.Posts() {
		if p.ID == args[0] {
			printPost(p)
		}
	}
	return nil
}

func runFeedDelete(cmd *cobra.Command, args []string) error {
	container := newContainer(cmd.Context())

	if err := container.Feed.Refresh(cmd.Context(), ""); err != nil {
		return err
	}
	if err := container.Feed.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted post %s\n", args[0])
	return nil
}

func printPost(p post.Post) {
	liked := " "
	if p.IsLiked {
		liked = "*"
	}
	fmt.Printf("%s  [%s%3d]  %-30s  %s\n", p.ID, liked, p.LikesCount, p.Title, p.Author.Name)
}
