package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"quickview.GO/config"
)

// StartCron schedules every registered job and starts the scheduler. A job's
// schedule can be overridden with CRON_<NAME>.
func StartCron() *cron.Cron {
	c := cron.New()
	jobs := Jobs()
	for _, name := range Names(jobs) {
		j := jobs[name]
		run := j.Run
		sched := config.CronSchedule(name, j.Schedule)
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
		log.Printf("Cron job %s scheduled: %s", name, sched)
	}
	c.Start()
	return c
}
