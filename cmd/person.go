package cmd

import (
	"context"
	"os"

	"github.com/emrgen/logbook/internal/config"
	"github.com/emrgen/logbook/internal/model"
	"github.com/emrgen/logbook/internal/service"
	"github.com/emrgen/logbook/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "person commands",
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	personCmd.AddCommand(addPersonCmd())
	personCmd.AddCommand(listPersonsCmd())
}

func newPersonService() *service.PersonService {
	db := config.GetDb(config.LoadConfig())
	return service.NewPersonService(store.NewGormStore(db))
}

func addPersonCmd() *cobra.Command {
	var userID string
	var fullName string
	var shortBio string
	var visibility string

	var required = []string{"user-id", "name"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "add a person",
		Example: "logbook person add -u <user-id> -n <full-name> -b <bio> -v GLOBAL",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			vis := model.VisibilityPrivate
			if visibility != "" {
				parsed, err := model.ParseVisibility(visibility)
				if err != nil {
					logrus.Error("invalid visibility, expected PRIVATE or GLOBAL")
					return
				}
				vis = parsed
			}

			person, err := newPersonService().CreatePerson(context.Background(), userID, fullName, shortBio, vis)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("person created with id: %s", person.ID)
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")
	command.Flags().StringVarP(&fullName, "name", "n", "", "full name (required)")
	command.Flags().StringVarP(&shortBio, "bio", "b", "", "short bio")
	command.Flags().StringVarP(&visibility, "visibility", "v", "", "PRIVATE or GLOBAL")

	command.Flags().SortFlags = false

	return command
}

func listPersonsCmd() *cobra.Command {
	var userID string

	var required = []string{"user-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list visible persons",
		Example: "logbook person list -u <user-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			persons, err := newPersonService().ListPersons(context.Background(), userID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Visibility"})
			for _, person := range persons {
				table.Append([]string{person.ID, person.FullName, string(person.Visibility)})
			}

			table.Render()
		},
	}

	command.Flags().StringVarP(&userID, "user-id", "u", "", "user id (required)")

	return command
}
