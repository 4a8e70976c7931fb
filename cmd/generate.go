package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/render"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a quiz for a Wikipedia article and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return generateQuiz(newService(), workflowOptions(cmd), args[0], asJSON, cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().Bool("json", false, "Print the quiz as JSON")
}

// generateQuiz runs one generation to completion and prints the result.
func generateQuiz(svc client.Service, opts workflow.Options, url string, asJSON bool, out io.Writer) error {
	wf := workflow.NewGenerateWorkflow(svc, opts)
	wf.SetURL(url)
	if run := wf.Submit(); run != nil {
		if msg, ok := run().(workflow.QuizGeneratedMsg); ok {
			wf.Apply(msg)
		}
	}

	state := wf.State()
	if state.IsFailure() {
		return errors.New(state.Message())
	}
	q, ok := state.Payload()
	if !ok {
		return errors.New(workflow.GenerateFailedMessage)
	}
	return printQuiz(out, q, asJSON)
}

func printQuiz(out io.Writer, q *quiz.Quiz, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}
	_, err := fmt.Fprint(out, render.Text(render.Render(q)))
	return err
}
