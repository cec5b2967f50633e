package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"quickview.GO/config"
	"quickview.GO/cron"
	_ "quickview.GO/cron/jobs"
)

var (
	jobName  string
	listJobs bool
)

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler, list the jobs or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		jobs := cron.Jobs()
		if listJobs {
			for _, name := range cron.Names(jobs) {
				fmt.Fprintf(out, "%-16s %s\n", name, config.CronSchedule(name, jobs[name].Schedule))
			}
			return nil
		}
		if jobName != "" {
			j, ok := jobs[strings.ToLower(jobName)]
			if !ok {
				return fmt.Errorf("unknown job: %s", jobName)
			}
			fmt.Fprintf(out, "Running cron job: %s\n", jobName)
			j.Run(args...)
			return nil
		}

		fmt.Fprintln(out, "Starting cron scheduler...")
		c := cron.StartCron()
		defer c.Stop()
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	cronStartCmd.Flags().BoolVar(&listJobs, "list", false, "List the registered jobs with their effective schedules")
	rootCmd.AddCommand(cronStartCmd)
}
