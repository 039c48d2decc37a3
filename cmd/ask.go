package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vwency/policy-chat-gateway/internal/conversation"
)

var (
	askUserID string
	askEmail  string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Send one question to the backend and print the reply",
	Long: `Resolves the caller, submits the question and prints the message the
chat UI would show, including remediation text for denied questions.

Example:
  gateway ask --user 2131 "What is our Q3 revenue?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askUserID, "user", "", "user id of the asker")
	askCmd.Flags().StringVar(&askEmail, "email", "", "email of the asker")
}

func runAsk(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}
	defer gw.close()

	ctx := cmd.Context()
	uc := gw.resolver.Resolve(ctx, askEmail, askUserID)
	conv := conversation.New(uc, gw.queries, conversation.WithLogger(logger))

	reply, err := conv.Send(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
	return nil
}
