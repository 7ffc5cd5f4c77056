package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/service/ui"
)

var rootCmd = &cobra.Command{
	Use:           "gaul",
	Short:         core.BotName + " - Telegram bot that learns to chat from the chats it sees",
	Version:       core.BotVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(seedCmd)
	customizeHelp(rootCmd)
}

func customizeHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()

		fmt.Fprintln(out, ui.Title.Render(core.BotName+" v"+core.BotVersion))
		fmt.Fprintln(out, ui.Muted.Render(c.Short))
		fmt.Fprintln(out)

		if c.HasAvailableSubCommands() {
			fmt.Fprintln(out, ui.Section.Render("Commands"))
			for _, sub := range c.Commands() {
				if sub.Hidden {
					continue
				}
				fmt.Fprintf(out, "  %s  %s\n",
					ui.Command.Render(fmt.Sprintf("%-10s", sub.Name())),
					sub.Short)
			}
			fmt.Fprintln(out)
		}

		if c.HasAvailableFlags() {
			fmt.Fprintln(out, ui.Section.Render("Flags"))
			fmt.Fprintln(out, ui.Flag.Render(c.Flags().FlagUsages()))
		}
	})
}
