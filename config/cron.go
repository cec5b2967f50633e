package config

import "strings"

// CronSchedule returns the schedule for job, overridable with
// CRON_<JOB>, e.g. CRON_SESSIONSPURGE="@every 30s".
func CronSchedule(job, def string) string {
	return GetEnv("CRON_"+strings.ToUpper(job), def)
}
