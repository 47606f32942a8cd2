package services

import (
	"context"

	"github.com/jobhunt/backend/internal/logger"
	"github.com/jobhunt/backend/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type vacancyCountRepository interface {
	CountAll(ctx context.Context) (int64, error)
}

type skillCountRepository interface {
	Count(ctx context.Context) (int64, error)
}

type avgVacanciesRepository interface {
	AvgVacancies(ctx context.Context) (float64, error)
}

// StatsCollector periodically refreshes the storage-derived gauges.
type StatsCollector struct {
	vacancies vacancyCountRepository
	skills    skillCountRepository
	users     avgVacanciesRepository
	cron      *cron.Cron
}

func NewStatsCollector(vacancies vacancyCountRepository, skills skillCountRepository,
	users avgVacanciesRepository) (*StatsCollector, error) {

	sc := &StatsCollector{
		vacancies: vacancies,
		skills:    skills,
		users:     users,
		cron:      cron.New(),
	}

	_, err := sc.cron.AddFunc("@every 10m", sc.collect)
	if err != nil {
		return nil, err
	}

	sc.collect()
	sc.cron.Start()
	log.Info("stats collector started")
	return sc, nil
}

func (sc *StatsCollector) Stop() {
	sc.cron.Stop()
}

func (sc *StatsCollector) collect() {
	ctx := context.Background()

	if total, err := sc.vacancies.CountAll(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to count vacancies: %v", err)
	} else {
		metrics.VacanciesGauge.Set(float64(total))
	}

	if total, err := sc.skills.Count(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to count skills: %v", err)
	} else {
		metrics.SkillsGauge.Set(float64(total))
	}

	if avg, err := sc.users.AvgVacancies(ctx); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to average vacancies per user: %v", err)
	} else {
		metrics.AvgVacanciesPerUserGauge.Set(avg)
	}
}
