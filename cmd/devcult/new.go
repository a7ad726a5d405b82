package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xdevcult/blog"
	"github.com/0xdevcult/blog/frontmatter"
	"github.com/0xdevcult/blog/scaffold"
)

var newAuthor string

var newCmd = &cobra.Command{
	Use:   `new "Post title"`,
	Short: "Create a draft post",
	Long:  `Create posts/<slug>.md under the content directory with today's date, marked as draft.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newAuthor, "author", "", "post author (default $SITE_AUTHOR or DevCult Team)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	dir := contentDir
	if dir == "" {
		dir = blog.EnvOr("CONTENT_DIR", frontmatter.DefaultRoot)
	}
	author := newAuthor
	if author == "" {
		author = blog.EnvOr("SITE_AUTHOR", "DevCult Team")
	}

	path, err := scaffold.WritePost(cmd.Context(), dir, scaffold.Post{
		Title:  title,
		Slug:   blog.Slugify(title),
		Author: author,
		Date:   time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Remove `draft: true` when the post is ready to publish.")
	return nil
}
