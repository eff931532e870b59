package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/model"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and save assessments on the remote service",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historySaveCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved assessments",
		RunE:  runHistoryList,
	}

	cmd.Flags().Int("limit", 10, "maximum number of items to fetch")
	cmd.Flags().Int("offset", 0, "number of items to skip")

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client, err := newClient()
	if err != nil {
		return err
	}

	var items []model.HistoryItem
	err = runRequest(ctx, "Fetching history", func(ctx context.Context) error {
		var reqErr error
		items, reqErr = client.GetHistory(ctx, limit, offset)
		return reqErr
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.NewRenderer().FormatHistory(items))
	return nil
}

func historySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <summary>",
		Short: "Save an assessment summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistorySave,
	}
}

func runHistorySave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newClient()
	if err != nil {
		return err
	}

	var saved model.SavedHistory
	err = runRequest(ctx, "Saving to history", func(ctx context.Context) error {
		var reqErr error
		saved, reqErr = client.SaveHistory(ctx, args[0])
		return reqErr
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Saved as " + saved.ID))
	return nil
}
