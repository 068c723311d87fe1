package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	SwapsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sigec_swaps_completed_total",
		Help: "Total de trocas de bateria concluídas",
	})

	SwapDurationMinutes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sigec_swap_duration_minutes",
		Help:    "Duração das trocas de bateria em minutos",
		Buckets: []float64{1, 2, 5, 10, 15, 30, 60},
	})

	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sigec_bookings_created_total",
		Help: "Total de agendamentos criados",
	})

	SubscriptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sigec_subscriptions_total",
		Help: "Total de assinaturas compradas",
	})

	WalletDebitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sigec_wallet_debits_total",
		Help: "Total de débitos efetuados em carteiras",
	})

	ShiftConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sigec_shift_conflicts_total",
		Help: "Total de turnos rejeitados por sobreposição",
	})
)
