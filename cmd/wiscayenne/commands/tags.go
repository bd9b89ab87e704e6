package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/wiscayenne/format"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the record tag table",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-6s %s\n", "KIND", "TAG", "PAYLOAD")
			for _, k := range format.Kinds() {
				l, _ := format.LayoutOf(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s 0x%02X   %d\n", k, uint8(l.Tag), l.PayloadSize)
			}
		},
	}
}
