// ABOUTME: CLI commands for the AI health assistant chat.
// ABOUTME: One-shot messages, history display, and clearing.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/harperreed/medtrack/internal/state"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:     "chat [message]",
	Aliases: []string{"c"},
	Short:   "Chat with the AI health assistant",
	Long: `Send a message to the AI health assistant.

The conversation is kept in your session history. If the AI service is
unreachable, the assistant answers with a fixed fallback message.

COMMANDS:

  chat <message>   Send a message and print the reply
  chat history     Show the conversation so far
  chat clear       Clear the conversation history

EXAMPLES:

  medtrack chat "What does high LDL mean?"
  medtrack chat history
  medtrack chat clear`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(state.WelcomeMessage)
			return nil
		}

		reply, err := session.SendChatMessage(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}

		fmt.Println(reply.Text)
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := session.Snapshot().ChatHistory
		if len(history) == 0 {
			fmt.Println("No messages yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range history {
			speaker := "you"
			if m.Role == models.RoleAssistant {
				speaker = "assistant"
			}
			fmt.Printf("%s %s\n", faint.Sprintf("[%s %s]", m.SentAt.Format("15:04"), speaker), m.Text)
		}
		return nil
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.ClearChat(); err != nil {
			return fmt.Errorf("failed to clear chat: %w", err)
		}
		color.Green("✓ Chat history cleared")
		return nil
	},
}

func init() {
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatClearCmd)
	rootCmd.AddCommand(chatCmd)
}
