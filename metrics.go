package ringchan

import "github.com/prometheus/client_golang/prometheus"

var (
	lenDesc = prometheus.NewDesc(
		"ringchan_buffered_items",
		"Items currently buffered in the channel.",
		[]string{"chan"}, nil,
	)
	capDesc = prometheus.NewDesc(
		"ringchan_capacity",
		"Channel capacity.",
		[]string{"chan"}, nil,
	)
	closedDesc = prometheus.NewDesc(
		"ringchan_closed",
		"1 if the channel is closed.",
		[]string{"chan"}, nil,
	)
	attemptsDesc = prometheus.NewDesc(
		"ringchan_attempts_total",
		"Send and receive attempts.",
		[]string{"chan", "dir"}, nil,
	)
	rejectedDesc = prometheus.NewDesc(
		"ringchan_rejected_total",
		"Non-blocking attempts rejected because the buffer was full or empty.",
		[]string{"chan", "dir"}, nil,
	)
	blockedDesc = prometheus.NewDesc(
		"ringchan_blocked_total",
		"Suspensions of blocking send and receive.",
		[]string{"chan"}, nil,
	)
	closedErrorsDesc = prometheus.NewDesc(
		"ringchan_closed_errors_total",
		"Operations that failed because the channel was closed.",
		[]string{"chan"}, nil,
	)
	notificationsDesc = prometheus.NewDesc(
		"ringchan_select_notifications_total",
		"Select wakers posted on state changes.",
		[]string{"chan"}, nil,
	)
)

// Collector exports channel statistics to prometheus.
type Collector struct {
	sources []StatsSource
}

// NewCollector creates a collector over the given channels.
func NewCollector(sources ...StatsSource) *Collector {
	return &Collector{sources: sources}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lenDesc
	ch <- capDesc
	ch <- closedDesc
	ch <- attemptsDesc
	ch <- rejectedDesc
	ch <- blockedDesc
	ch <- closedErrorsDesc
	ch <- notificationsDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, src := range c.sources {
		s := src.Stats()

		closed := 0.0
		if s.Closed {
			closed = 1
		}

		ch <- prometheus.MustNewConstMetric(lenDesc, prometheus.GaugeValue, float64(s.Len), s.Name)
		ch <- prometheus.MustNewConstMetric(capDesc, prometheus.GaugeValue, float64(s.Cap), s.Name)
		ch <- prometheus.MustNewConstMetric(closedDesc, prometheus.GaugeValue, closed, s.Name)
		ch <- prometheus.MustNewConstMetric(attemptsDesc, prometheus.CounterValue, float64(s.SendAttempts), s.Name, "send")
		ch <- prometheus.MustNewConstMetric(attemptsDesc, prometheus.CounterValue, float64(s.RecvAttempts), s.Name, "recv")
		ch <- prometheus.MustNewConstMetric(rejectedDesc, prometheus.CounterValue, float64(s.SendFull), s.Name, "send")
		ch <- prometheus.MustNewConstMetric(rejectedDesc, prometheus.CounterValue, float64(s.RecvEmpty), s.Name, "recv")
		ch <- prometheus.MustNewConstMetric(blockedDesc, prometheus.CounterValue, float64(s.Blocked), s.Name)
		ch <- prometheus.MustNewConstMetric(closedErrorsDesc, prometheus.CounterValue, float64(s.ClosedErrors), s.Name)
		ch <- prometheus.MustNewConstMetric(notificationsDesc, prometheus.CounterValue, float64(s.Notifications), s.Name)
	}
}
