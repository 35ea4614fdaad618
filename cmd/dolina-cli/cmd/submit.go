package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/dolinaroz/landing/internal/app"
	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/page"
)

var submitFields lead.Fields

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a single lead through the configured relay",
	Long: `Run one submission workflow with the given contact details against the
relay selected by RELAY_PROVIDER.

Examples:
  dolina-cli submit --name "Анна" --phone "+7 900 000-00-00"
  RELAY_PROVIDER=log dolina-cli submit --name test --phone 1 --message "hello"`,
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		container := app.NewContainer(cfg)
		defer container.Shutdown()

		factory, err := do.Invoke[app.WorkflowFactory](container)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ack, err := factory(uuid.NewString()).Submit(cmd.Context(), submitFields)

		var valErr *lead.ValidationError
		var subErr *lead.SubmissionError
		switch {
		case errors.As(err, &valErr):
			fmt.Fprintf(out, "%s: %s\n", page.RequiredHint, strings.Join(valErr.Fields, ", "))
			return err
		case errors.As(err, &subErr):
			fmt.Fprintln(out, page.FailureNotice)
			return err
		case err != nil:
			return err
		}

		fmt.Fprintln(out, page.SentTitle)
		fmt.Fprintf(out, "sent at %s\n", ack.SentAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFields.Name, "name", "", "Visitor name (required)")
	f.StringVar(&submitFields.Phone, "phone", "", "Phone number (required)")
	f.StringVar(&submitFields.Email, "email", "", "Email address")
	f.StringVar(&submitFields.Message, "message", "", "Free-form comment")
	rootCmd.AddCommand(submitCmd)
}
