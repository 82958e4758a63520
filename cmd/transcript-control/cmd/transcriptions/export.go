package transcriptions

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/export"
)

var (
	outputFilePath string
	showProgress   bool
)

func init() {
	exportCmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "xlsx file to write")
	exportCmd.Flags().StringVarP(&search, "search", "s", "", "search filename or meeting title")
	exportCmd.Flags().StringVar(&status, "status", "", "pending, processing, finished or error")
	exportCmd.Flags().StringVar(&language, "language", "", "set language")
	exportCmd.Flags().BoolVar(&showProgress, "progress", export.IsTTY(os.Stderr), "show a progress bar")
	exportCmd.MarkFlagRequired("output")

	Cmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every matching transcription to Excel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cliutil.Context(cmd)
		defer stop()

		progress := export.NewProgress(export.ProgressConfig{Enabled: showProgress, Writer: cmd.ErrOrStderr()})
		exporter := export.NewExporter(cliutil.NewClient(), progress, cliutil.Logger())

		n, err := exporter.ToFile(ctx, dto.ListTranscriptionsQuery{Search: search, Status: status, Language: language}, outputFilePath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, %d transcriptions written to %s\n", n, outputFilePath)
		return nil
	},
}
