package main

import (
	"fmt"

	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the content catalog",
	}

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse the content file and summarise it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path = cfg.ContentFile
			}

			catalog, err := content.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d posts, %d projects, %d tags\n",
				path, len(catalog.Posts()), len(catalog.Projects()), len(catalog.Tags()))

			years := catalog.PostsByYear()
			for _, year := range years.Keys {
				fmt.Fprintf(out, "  %s: %d posts\n", year, len(years.Get(year)))
			}
			for _, p := range catalog.Posts() {
				fmt.Fprintf(out, "  - %s (%s, %d min read)\n",
					p.Slug, utils.FormatDateShort(p.PublishedAt), utils.ReadingTime(p.Content))
			}
			return nil
		},
	}

	contentCmd.AddCommand(checkCmd)
	return contentCmd
}

func newSlugCmd() *cobra.Command {
	slugCmd := &cobra.Command{
		Use:   "slug <text>",
		Short: "Print the URL slug for a title",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			title := args[0]
			for _, a := range args[1:] {
				title += " " + a
			}

			unique, _ := cmd.Flags().GetBool("unique")
			if unique {
				fmt.Fprintln(cmd.OutOrStdout(), utils.GenerateSlug(title))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.Slugify(title))
		},
	}
	slugCmd.Flags().BoolP("unique", "u", false, "append a time-based suffix")
	return slugCmd
}
