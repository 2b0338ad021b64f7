package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/expenses-dev/expenses-service/internal/repository"
)

// StatsStore provides the aggregate query the summary job reports on.
type StatsStore interface {
	ExpenseStatsByCurrency(ctx context.Context) ([]repository.CurrencyStats, error)
}

// Summary periodically logs per-currency expense counts and totals.
type Summary struct {
	store    StatsStore
	log      *logrus.Logger
	schedule string
	cron     *cron.Cron
}

// NewSummary initializes the summary job with a cron schedule expression.
func NewSummary(store StatsStore, log *logrus.Logger, schedule string) *Summary {
	return &Summary{store: store, log: log, schedule: schedule, cron: cron.New()}
}

// Start registers and launches the job.
func (s *Summary) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Expense summary job scheduled: %s", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Summary) Stop() {
	<-s.cron.Stop().Done()
}

// Run executes one summary pass.
func (s *Summary) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := s.store.ExpenseStatsByCurrency(ctx)
	if err != nil {
		s.log.Errorf("Expense summary failed: %v", err)
		return
	}

	for _, st := range stats {
		s.log.WithFields(logrus.Fields{
			"currency": st.CurrencyCode,
			"count":    st.Count,
			"total":    st.Total.StringFixed(2),
		}).Info("Expense summary")
	}
}
