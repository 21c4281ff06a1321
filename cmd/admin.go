package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/emrgen/logbook/internal/config"
	"github.com/emrgen/logbook/internal/queue"
	"github.com/emrgen/logbook/internal/service"
	"github.com/emrgen/logbook/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "admin commands",
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	adminCmd.AddCommand(adminSearchCmd())
	adminCmd.AddCommand(adminDeleteCmd())
}

func newAdminService() *service.AdminService {
	cnf := config.LoadConfig()
	db := config.GetDb(cnf)

	var audit queue.AuditQueue = queue.NewNoop()
	if cnf.KafkaBrokers != "" {
		kafkaQueue, err := queue.NewKafkaQueue(cnf.KafkaBrokers, cnf.AuditTopic)
		if err != nil {
			logrus.Warnf("audit queue unavailable: %v", err)
		} else {
			audit = kafkaQueue
		}
	}

	return service.NewAdminService(store.NewGormStore(db), audit)
}

func adminSearchCmd() *cobra.Command {
	var userID string
	var justification string
	var page int
	var size int

	var required = []string{"user-id", "justification"}

	command := &cobra.Command{
		Use:     "search",
		Short:   "search a user's daily logs",
		Example: "logbook admin search -u <user-id> -j <justification>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			logs, total, err := newAdminService().SearchDailyLogs(context.Background(), justification, userID, page, size, store.SortOrder{})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Date"})
			for _, dailyLog := range logs {
				table.Append([]string{strconv.FormatInt(dailyLog.ID, 10), dailyLog.LogDate})
			}
			table.Render()

			logrus.Infof("%d logs in total", total)
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")
	command.Flags().StringVarP(&justification, "justification", "j", "", "reason for access (required)")
	command.Flags().IntVarP(&page, "page", "p", 0, "page number")
	command.Flags().IntVarP(&size, "size", "n", 20, "page size")

	command.Flags().SortFlags = false

	return command
}

func adminDeleteCmd() *cobra.Command {
	var logID int64
	var justification string

	var required = []string{"log-id", "justification"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete a daily log with its sections and links",
		Example: "logbook admin delete -l <log-id> -j <justification>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newAdminService().DeleteDailyLog(context.Background(), justification, logID)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("daily log %d deleted", logID)
		},
	}

	command.Flags().Int64VarP(&logID, "log-id", "l", 0, "daily log id (required)")
	command.Flags().StringVarP(&justification, "justification", "j", "", "reason for deletion (required)")

	command.Flags().SortFlags = false

	return command
}
