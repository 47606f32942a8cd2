package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)
	VacanciesCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_vacancies_created_total",
			Help: "Total number of created vacancies.",
		},
	)
	LikesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_vacancy_likes_total",
			Help: "Total number of vacancy like increments.",
		},
	)
	VacanciesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_vacancies",
			Help: "Current number of vacancies in storage.",
		},
	)
	SkillsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_skills",
			Help: "Current number of skills in the catalog.",
		},
	)
	AvgVacanciesPerUserGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_avg_vacancies_per_user",
			Help: "Average number of vacancies per user.",
		},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(VacanciesCreatedCounter)
	prometheus.MustRegister(LikesCounter)
	prometheus.MustRegister(VacanciesGauge)
	prometheus.MustRegister(SkillsGauge)
	prometheus.MustRegister(AvgVacanciesPerUserGauge)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
