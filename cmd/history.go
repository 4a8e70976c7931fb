package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously generated quizzes",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously generated quizzes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listHistory(newService(), workflowOptions(cmd), cmd.OutOrStdout())
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := quiz.ParseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return showQuiz(newService(), workflowOptions(cmd), id, asJSON, cmd.OutOrStdout())
	},
}

func init() {
	historyShowCmd.Flags().Bool("json", false, "Print the quiz as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}

func listHistory(svc client.Service, opts workflow.Options, out io.Writer) error {
	wf := workflow.NewHistoryWorkflow(svc, opts)
	if msg, ok := wf.Activate()().(workflow.HistoryLoadedMsg); ok {
		wf.ApplyList(msg)
	}
	if state := wf.ListState(); state.IsFailure() {
		return errors.New(state.Message())
	}

	entries := wf.History()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No quizzes found.")
		return nil
	}

	// Header.
	fmt.Fprintf(out, "%-6s  %-32s  %-16s  %s\n", "ID", "Title", "Generated", "URL")
	fmt.Fprintln(out, strings.Repeat("─", 100))

	for _, e := range entries {
		title := e.Title
		if r := []rune(title); len(r) > 32 {
			title = string(r[:29]) + "..."
		}
		date := "-"
		if !e.DateGenerated.IsZero() {
			date = e.DateGenerated.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "%-6s  %-32s  %-16s  %s\n", e.ID, title, date, e.URL)
	}

	fmt.Fprintf(out, "\n%d quizzes\n", len(entries))
	return nil
}

func showQuiz(svc client.Service, opts workflow.Options, id quiz.ID, asJSON bool, out io.Writer) error {
	wf := workflow.NewHistoryWorkflow(svc, opts)
	if msg, ok := wf.SelectEntry(id)().(workflow.QuizFetchedMsg); ok {
		wf.ApplyDetail(msg)
	}
	if state := wf.Detail(); state.IsFailure() {
		return errors.New(state.Message())
	}
	if !wf.Overlay().IsOpen() {
		return errors.New(workflow.DetailFailedMessage)
	}
	return printQuiz(out, wf.Overlay().Quiz(), asJSON)
}
