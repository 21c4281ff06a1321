package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/emrgen/logbook/internal/config"
	"github.com/emrgen/logbook/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runJobsCmd())
}

// runJobsCmd keeps the background jobs alive until interrupted.
func runJobsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "run",
		Short: "run the background jobs",
		Run: func(cmd *cobra.Command, args []string) {
			cnf := config.LoadConfig()
			logbook := newLogbookService()

			executor := jobs.NewTaskExecutor(nil, []jobs.CronJob{
				jobs.NewGraphWarmTask(cnf.GraphWarmCron, logbook),
			})
			executor.Run()
			defer executor.Stop()

			logrus.Infof("jobs running, press ctrl+c to stop")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
		},
	}

	return command
}
