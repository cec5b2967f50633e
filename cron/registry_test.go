package cron

import (
	"slices"
	"testing"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	ran := false
	Register("testregistryjob", "@every 1h", func(args ...string) {
		ran = true
	})
	defer Unregister("testregistryjob")

	jobs := Jobs()
	j, ok := jobs["testregistryjob"]
	if !ok {
		t.Fatal("testregistryjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run()
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}

func TestRegistry_Register_BadSchedulePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on unparsable schedule")
		}
	}()
	Register("badschedule", "every so often", func(...string) {})
}

func TestRegistry_NamesLowerCased(t *testing.T) {
	Register("WarmThings", "@hourly", func(...string) {})
	defer Unregister("WarmThings")
	Register("apurge", "@every 1m", func(...string) {})
	defer Unregister("apurge")

	names := Names(Jobs())
	if !slices.Contains(names, "warmthings") {
		t.Errorf("names = %v, want warmthings", names)
	}
	if !slices.IsSorted(names) {
		t.Errorf("names = %v, want sorted", names)
	}
}
