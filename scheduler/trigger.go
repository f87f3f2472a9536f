// Package scheduler maintains the registry of timed triggers and runs them.
package scheduler

import (
	"fmt"
	"time"
)

// Trigger invokes a named function every Hours hours. Args are the command line options
// the function is invoked with.
type Trigger struct {
	ID       string    `yaml:"id"`
	Function string    `yaml:"function"`
	Hours    uint      `yaml:"every-hours"`
	Args     []string  `yaml:"args,omitempty"`
	Created  time.Time `yaml:"created"`
}

func (t Trigger) Interval() time.Duration {
	return time.Duration(t.Hours) * time.Hour
}

func (t Trigger) String() string {
	return fmt.Sprintf("%v  %-12v every %vh  %v", t.ID, t.Function, t.Hours, t.Args)
}

// Scheduler is the set of operations on a trigger store.
type Scheduler interface {
	List() ([]Trigger, error)
	Delete(trigger Trigger) error
	CreateTimeTrigger(function string, hours uint, args ...string) (Trigger, error)
}

// EnsureTimeTrigger replaces all existing triggers for function with a single new trigger,
// so that repeated installation never accumulates duplicate scheduled runs. Triggers for
// other functions are left alone.
func EnsureTimeTrigger(s Scheduler, function string, hours uint, args ...string) (Trigger, error) {
	triggers, err := s.List()
	if err != nil {
		return Trigger{}, err
	}

	for _, t := range triggers {
		if t.Function == function {
			if err := s.Delete(t); err != nil {
				return Trigger{}, err
			}
		}
	}

	return s.CreateTimeTrigger(function, hours, args...)
}
