package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emrgen/logbook/internal/cache"
	"github.com/emrgen/logbook/internal/compress"
	"github.com/emrgen/logbook/internal/config"
	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/queue"
	"github.com/emrgen/logbook/internal/service"
	"github.com/emrgen/logbook/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveSectionCmd())
	rootCmd.AddCommand(showLogbookCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(graphCmd())
}

// newLogbookService wires a service over the configured database, with
// the cache and the audit queue attached only when configured.
func newLogbookService() *service.LogbookService {
	cnf := config.LoadConfig()
	db := config.GetDb(cnf)
	gormStore := store.NewGormStore(db)

	var cacher cache.Cache
	if cnf.RedisAddr != "" {
		cacher = cache.NewRedis(cnf.RedisAddr, cacheCodec(cnf.CacheCodec))
	}

	var audit queue.AuditQueue = queue.NewNoop()
	if cnf.KafkaBrokers != "" {
		kafkaQueue, err := queue.NewKafkaQueue(cnf.KafkaBrokers, cnf.AuditTopic)
		if err != nil {
			logrus.Warnf("audit queue unavailable: %v", err)
		} else {
			audit = kafkaQueue
		}
	}

	return service.NewLogbookService(gormStore, cacher, audit)
}

func cacheCodec(name string) compress.Compress {
	switch name {
	case "brotli":
		return compress.NewBrotli()
	case "lz4":
		return compress.NewLZ4()
	case "nop":
		return compress.NewNop()
	default:
		return compress.NewGZip()
	}
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse(model.DateLayout, value)
}

func saveSectionCmd() *cobra.Command {
	var userID string
	var date string
	var sectionType string
	var summary string
	var mood string

	var required = []string{"user-id", "section", "summary"}

	command := &cobra.Command{
		Use:     "save",
		Short:   "save one section of a day",
		Example: "logbook save -u <user-id> -d 2025-09-16 -s MORNING -m happy -c <summary>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			day, err := parseDateFlag(date)
			if err != nil {
				logrus.Error("invalid date, expected YYYY-MM-DD")
				return
			}

			st, err := model.ParseSectionType(sectionType)
			if err != nil {
				logrus.Error("invalid section, expected MORNING, AFTERNOON or EVENING")
				return
			}

			section, err := newLogbookService().SaveSection(context.Background(), userID, day, st, summary, mood)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("section saved with id: %d", section.ID)
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")
	command.Flags().StringVarP(&date, "date", "d", "", "log date, defaults to today")
	command.Flags().StringVarP(&sectionType, "section", "s", "", "section type (required)")
	command.Flags().StringVarP(&summary, "summary", "c", "", "section summary (required)")
	command.Flags().StringVarP(&mood, "mood", "m", "", "mood")

	command.Flags().SortFlags = false

	return command
}

func showLogbookCmd() *cobra.Command {
	var userID string
	var date string

	var required = []string{"user-id"}

	command := &cobra.Command{
		Use:     "show",
		Short:   "show the full logbook of a day",
		Example: "logbook show -u <user-id> -d 2025-09-16",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			day, err := parseDateFlag(date)
			if err != nil {
				logrus.Error("invalid date, expected YYYY-MM-DD")
				return
			}

			full, err := newLogbookService().GetFullLogbook(context.Background(), userID, day)
			if err != nil {
				logrus.Error(err)
				return
			}

			fmt.Printf("logbook %d (%s)\n", full.LogID, full.LogDate)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Section", "Mood", "Summary"})
			for _, section := range full.Sections {
				table.Append([]string{string(section.SectionType), section.Mood, section.Summary})
			}
			table.Render()

			if len(full.OutgoingLinks) > 0 {
				fmt.Println("outgoing links")
				renderLinks(full.OutgoingLinks)
			}
			if len(full.IncomingLinks) > 0 {
				fmt.Println("incoming links")
				renderLinks(full.IncomingLinks)
			}
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")
	command.Flags().StringVarP(&date, "date", "d", "", "log date, defaults to today")

	return command
}

func renderLinks(links []service.LinkPreview) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Anchor", "Kind", "Title", "Snippet"})
	for _, link := range links {
		table.Append([]string{link.AnchorText, string(link.RemoteKind), link.RemoteTitle, link.RemoteSnippet})
	}
	table.Render()
}

func historyCmd() *cobra.Command {
	var userID string
	var from string
	var to string
	var page int
	var size int

	var required = []string{"user-id"}

	command := &cobra.Command{
		Use:     "history",
		Short:   "list logbook previews for a date range",
		Example: "logbook history -u <user-id> --from 2025-09-10 --to 2025-09-16",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var start, end *time.Time
			if from != "" {
				day, err := time.Parse(model.DateLayout, from)
				if err != nil {
					logrus.Error("invalid from date, expected YYYY-MM-DD")
					return
				}
				start = &day
			}
			if to != "" {
				day, err := time.Parse(model.DateLayout, to)
				if err != nil {
					logrus.Error("invalid to date, expected YYYY-MM-DD")
					return
				}
				end = &day
			}

			history, err := newLogbookService().GetHistory(context.Background(), userID, start, end, page, size, store.SortOrder{})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Date", "Moods", "Preview"})
			for _, item := range history.Items {
				moods := ""
				for i, mood := range item.Moods {
					if i > 0 {
						moods += ", "
					}
					moods += mood
				}
				table.Append([]string{item.LogDate, moods, item.SummaryPreview})
			}
			table.Render()

			fmt.Printf("page %d of %d entries\n", history.Page, history.Total)
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")
	command.Flags().StringVar(&from, "from", "", "range start, defaults to six days before end")
	command.Flags().StringVar(&to, "to", "", "range end, defaults to today")
	command.Flags().IntVarP(&page, "page", "p", 0, "page number")
	command.Flags().IntVarP(&size, "size", "n", 7, "page size")

	return command
}

func graphCmd() *cobra.Command {
	var userID string

	var required = []string{"user-id"}

	command := &cobra.Command{
		Use:     "graph",
		Short:   "show the keyword graph",
		Example: "logbook graph -u <user-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			graph, err := newLogbookService().GetKeywordGraph(context.Background(), userID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Keyword", "Uses"})
			for _, node := range graph.Nodes {
				table.Append([]string{node.Label, strconv.Itoa(node.Weight)})
			}
			table.Render()

			table = tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Keyword", "Keyword", "Days"})
			for _, edge := range graph.Edges {
				table.Append([]string{edge.Source, edge.Target, strconv.Itoa(edge.Weight)})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")

	return command
}
