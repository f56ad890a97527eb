package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cardgallery/internal/catalog"
	"cardgallery/internal/services"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded gallery entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Catalog.HistoryLimit
			}

			store, err := ctx.openCatalog("history")
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return services.Wrap(services.ErrTransient, "history", "list records", "", err)
			}
			if jsonOutput {
				if records == nil {
					records = []catalog.Record{}
				}
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No entries recorded")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				result := rec.Output
				if rec.Failed() {
					result = "error: " + rec.Error
				}
				rows = append(rows, []string{
					shortID(rec.ID),
					shortID(rec.BatchID),
					strconv.Itoa(rec.Position + 1),
					rec.CreatedAt.Local().Format(time.DateTime),
					result,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Batch", "#", "Recorded", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries to show (defaults to catalog.history_limit, 0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalog("history show")
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return services.Wrap(services.ErrNotFound, "history show", "get record", "", err)
				}
				return services.Wrap(services.ErrTransient, "history show", "get record", "", err)
			}
			if jsonOutput {
				return writeJSON(cmd, rec)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\n", rec.ID)
			fmt.Fprintf(out, "Batch: %s\n", rec.BatchID)
			fmt.Fprintf(out, "Position: %d\n", rec.Position+1)
			fmt.Fprintf(out, "Kind: %s\n", rec.Kind)
			fmt.Fprintf(out, "Recorded: %s\n", rec.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Token: %s\n", rec.Token)
			if rec.Failed() {
				fmt.Fprintf(out, "Error: %s\n", rec.Error)
			} else {
				fmt.Fprintf(out, "Output: %s\n", rec.Output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCatalog("history clear")
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return services.Wrap(services.ErrTransient, "history clear", "clear catalog", "", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatCount(int(removed), "entry", "entries"))
			return nil
		},
	}
}
