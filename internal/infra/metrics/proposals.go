package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		proposalsGeneratedTotal,
		proposalQuotaBlocksTotal,
	)
}

var (
	proposalsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposals_generated_total",
			Help: "Generated proposals by tone and industry.",
		},
		[]string{"tone", "industry"},
	)

	proposalQuotaBlocksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "proposal_quota_blocks_total",
			Help: "Generation attempts blocked by the free-tier monthly quota.",
		},
	)
)

func IncProposalGenerated(tone, industry string) {
	proposalsGeneratedTotal.WithLabelValues(norm(tone), norm(industry)).Inc()
}

func IncProposalQuotaBlocked() {
	proposalQuotaBlocksTotal.Inc()
}
