package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/models"
	"github.com/johndn/portfolio/internal/repository"
	"github.com/johndn/portfolio/internal/service"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/spf13/cobra"
)

// subjectWidth is how much of a subject the listing shows
const subjectWidth = 40

func newMessagesCmd() *cobra.Command {
	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Read contact form submissions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.Open(cmd.Context(), cfg.DatabaseDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			contactService := service.NewContactService(repository.NewContactRepository(database), nil)
			messages, err := contactService.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return printMessages(cmd.OutOrStdout(), messages)
		},
	}
	listCmd.Flags().IntP("limit", "n", service.DefaultListLimit, "maximum number of messages (1-50)")

	messagesCmd.AddCommand(listCmd)
	return messagesCmd
}

func printMessages(out io.Writer, messages []*models.ContactMessage) error {
	if len(messages) == 0 {
		_, err := fmt.Fprintln(out, "No messages yet.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tSTATUS\tFROM\tSUBJECT")
	for _, m := range messages {
		fmt.Fprintf(w, "%s\t%s\t%s <%s>\t%s\n",
			utils.FormatRelativeTime(m.CreatedAt),
			m.Status,
			m.Name,
			m.Email,
			utils.TruncateText(m.Subject, subjectWidth),
		)
	}
	return w.Flush()
}
