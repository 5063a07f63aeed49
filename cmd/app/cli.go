package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/notes-assistant/internal/domain/notes"
	"github.com/yanqian/notes-assistant/internal/infra/config"
	apperrors "github.com/yanqian/notes-assistant/pkg/errors"
)

// buildService constructs the notes service for one-shot commands.
var buildService = initializeService

func newSummarizeCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize meeting notes from --file or stdin and print the JSON result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			svc, err := buildService(config.Path(*configPath))
			if err != nil {
				return err
			}
			resp, err := svc.Summarize(cmd.Context(), notes.NewRequest(map[string]string{
				notes.FieldMeetingNotes: text,
			}))
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read notes from this file instead of stdin")
	return cmd
}

func newGenerateNotesCmd(configPath *string) *cobra.Command {
	var (
		file    string
		subject string
	)
	cmd := &cobra.Command{
		Use:   "generate-notes",
		Short: "Turn lecture notes from --file or stdin into study notes and a quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			svc, err := buildService(config.Path(*configPath))
			if err != nil {
				return err
			}
			resp, err := svc.GenerateNotes(cmd.Context(), notes.NewRequest(map[string]string{
				notes.FieldLectureNotes: text,
				notes.FieldSubject:      subject,
			}))
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read notes from this file instead of stdin")
	cmd.Flags().StringVarP(&subject, "subject", "s", notes.DefaultSubject, "subject label used in the prompt")
	return cmd
}

func readInput(stdin io.Reader, file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read notes file: %w", err)
	}
	return string(data), nil
}

// writeResult prints the same envelope the HTTP API returns. The error is
// passed through so the process exits non-zero.
func writeResult(w io.Writer, resp any, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err == nil {
		return enc.Encode(resp)
	}
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		_ = enc.Encode(notes.ClientError{Error: err.Error()})
	} else {
		_ = enc.Encode(notes.Failure{Success: false, Error: err.Error()})
	}
	return err
}
