package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/stashops/go-facility-recon/cmd/setup"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/deliveries/job"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "job",
	Short: "Job application for configuring and running a batch job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	j *job.Job
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().IntP(runJobCmdMonth, "m", 0, "period month (1-12)")
	runJobCmd.MarkFlagRequired(runJobCmdMonth)
	runJobCmd.Flags().IntP(runJobCmdYear, "y", 0, "period year")
	runJobCmd.MarkFlagRequired(runJobCmdYear)
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	for version, l := range j.Routes {
		for name := range l {
			list := fmt.Sprintf("version=%s, name=%s", version, name)
			fmt.Println(list)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "job run -n={job-name} -v={job-version} -m={month} -y={year}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdMonth   = "month"
	runJobCmdYear    = "year"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	month, _ := ccmd.Flags().GetInt(runJobCmdMonth)
	year, _ := ccmd.Flags().GetInt(runJobCmdYear)

	s, _, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer func() {
		s.WriteDB.Close()
		s.ReadDB.Close()
		s.Cache.Close()
	}()

	j = job.New(s.Config, s.RepoSQL, s.Service)
	j.Start(ctx, version, name, month, year)
	log.Info(ctx, "job stopped!")
}
