package scheduler

import (
	"context"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Job is run on every tick.
type Job interface {
	Run(ctx context.Context)
}

// Scheduler runs a job on a cron spec. An empty spec disables it.
type Scheduler struct {
	cron *cron.Cron
	job  Job
	spec string
}

func New(spec string, job Job) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		job:  job,
		spec: spec,
	}
}

func (s *Scheduler) Enabled() bool {
	return s.spec != "" && s.job != nil
}

func (s *Scheduler) Start() error {
	if !s.Enabled() {
		grip.Info("scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		grip.Info(message.Fields{
			"message": "scheduled fund sync triggered",
			"spec":    s.spec,
		})
		s.job.Run(context.Background())
	})
	if err != nil {
		return errors.Wrapf(err, "schedule %q", s.spec)
	}

	s.cron.Start()
	return nil
}

// Stop prevents further ticks and waits for a running job to return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
