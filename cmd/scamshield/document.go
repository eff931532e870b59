package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scamshield/scamshield/internal/model"
	"github.com/scamshield/scamshield/internal/normalize"
	"github.com/scamshield/scamshield/internal/upload"
)

func documentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document <file>",
		Short: "Analyze a document for forgery and fraud",
		Long: `Upload a document (PDF, image, or Word file up to 10MB) for fraud
analysis. The service inspects layout, extracted fields, and content.

An optional question steers the extraction model:

  scamshield document invoice.pdf --question "Who is the payee?"`,
		Args: cobra.ExactArgs(1),
		RunE: runDocument,
	}

	cmd.Flags().String("question", "", "question to ask about the document")
	cmd.Flags().Bool("json", false, "print the normalized result as JSON")

	return cmd
}

func runDocument(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	question, _ := cmd.Flags().GetString("question")
	asJSON, _ := cmd.Flags().GetBool("json")

	payload, err := openUpload(args[0], upload.ModalityDocument, false)
	if err != nil {
		return err
	}
	defer payload.Close()

	client, err := newClient()
	if err != nil {
		return err
	}

	var raw model.DocumentAnalysis
	err = runRequest(ctx, "Analyzing document", func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = client.AnalyzeDocument(ctx, payload.File(), question)
		return reqErr
	})
	if err != nil {
		return err
	}

	result := normalize.Document(raw, payload.info.Name, payload.info.MIME)
	return printResult("Document Analysis", result, asJSON)
}
