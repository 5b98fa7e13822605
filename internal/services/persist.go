package services

import (
	"errors"
	"log/slog"

	"bvdu-bank/internal/repositories"
)

// persister writes tables after an in-memory mutation and collects the failures.
// A failed write never undoes the mutation; the caller returns the collected error
// alongside its result.
type persister struct {
	logger  *slog.Logger
	metrics MetricsRecorderInterface
	errs    []error
}

func newPersister(logger *slog.Logger, metrics MetricsRecorderInterface) *persister {
	return &persister{logger: logger, metrics: metrics}
}

func (p *persister) save(table string, t repositories.Persistable) {
	p.check(table, t.Save())
}

func (p *persister) check(table string, err error) {
	if err == nil {
		return
	}
	p.logger.Error("failed to persist table", "table", table, "error", err)
	p.metrics.IncrementCounter("persistence_failure", map[string]string{"table": table})
	p.errs = append(p.errs, err)
}

func (p *persister) err() error {
	return errors.Join(p.errs...)
}

// join attaches any persistence failure to a business error
func (p *persister) join(err error) error {
	if pe := p.err(); pe != nil {
		return errors.Join(err, pe)
	}
	return err
}
