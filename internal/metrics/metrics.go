package metrics

import (
	"net/http"
	"oldphonepad/internal/app"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Decode outcomes used as the "result" label.
const (
	ResultOK          = "ok"
	ResultMissing     = "missing_input"
	ResultMissingSend = "missing_send"
	ResultRejected    = "rejected"
)

type Decoder struct {
	registry *prometheus.Registry

	Decodes      *prometheus.CounterVec
	Presses      prometheus.Counter
	Deletes      prometheus.Counter
	OutputLength prometheus.Histogram
}

func NewDecoder() *Decoder {
	m := &Decoder{
		registry: prometheus.NewRegistry(),
		Decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oldphonepad_decodes_total",
			Help: "Decode requests by result",
		}, []string{"result"}),
		Presses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oldphonepad_key_presses_total",
			Help: "Digit key presses decoded",
		}),
		Deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oldphonepad_deletes_total",
			Help: "Delete keys seen",
		}),
		OutputLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "oldphonepad_output_length",
			Help:    "Length of decoded text in characters",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	m.registry.MustRegister(m.Decodes, m.Presses, m.Deletes, m.OutputLength)
	return m
}

// Observe records a successful decode.
func (m *Decoder) Observe(res app.Result) {
	m.Decodes.WithLabelValues(ResultOK).Inc()
	m.Presses.Add(float64(res.Presses))
	m.Deletes.Add(float64(res.Deletes))
	m.OutputLength.Observe(float64(len([]rune(res.Text))))
}

func (m *Decoder) Fail(result string) {
	m.Decodes.WithLabelValues(result).Inc()
}

func (m *Decoder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
