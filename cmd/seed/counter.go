package main

import (
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/spf13/cobra"
)

var counterValue int64

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Create or repair the ID counter document",
	Long: `Without --value the counter is raised to the highest stored riddle ID
(creating it at 0 on an empty store). With --value it is set explicitly; values
below the highest stored ID are refused.`,
	RunE: runCounter,
}

func init() {
	counterCmd.Flags().Int64Var(&counterValue, "value", -1, "Force the counter to this value")
	rootCmd.AddCommand(counterCmd)
}

func runCounter(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, svc, closeFn, err := openService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if cmd.Flags().Changed("value") {
		if err := svc.ForceCounter(ctx, counterValue); err != nil {
			return err
		}
		logger.Infof("counter set to %d", counterValue)
		return nil
	}
	cur, err := svc.SyncCounter(ctx)
	if err != nil {
		return err
	}
	logger.Infof("counter at %d", cur)
	return nil
}
