package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/wiscayenne/lpp"
)

func newDevidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devid <name>",
		Short: "Print the 4-byte device id derived from a device name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := lpp.DeviceIDFromName(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())

			return nil
		},
	}
}
