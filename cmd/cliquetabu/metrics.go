package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solventlabs/cliquetabu/search"
)

// prometheusObserver exports restart and move/swap/perturb counts the same
// way vecgo's observability example wires a MetricsObserver implementation
// behind promhttp.Handler(). It is registered once per process; per-file
// runs share its collectors and are distinguished by the instance label.
type prometheusObserver struct {
	restarts *prometheus.CounterVec
	moves    *prometheus.CounterVec
	swaps    *prometheus.CounterVec
	perturbs *prometheus.CounterVec
	bestSize *prometheus.GaugeVec
}

func newPrometheusObserver() *prometheusObserver {
	o := &prometheusObserver{
		restarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cliquetabu_restarts_total",
			Help: "Total number of search restarts started",
		}, []string{"instance"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cliquetabu_moves_total",
			Help: "Total number of successful Move operations",
		}, []string{"instance"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cliquetabu_swaps_total",
			Help: "Total number of successful swap operations",
		}, []string{"instance", "kind"}),
		perturbs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cliquetabu_perturbations_total",
			Help: "Total number of perturbation events",
		}, []string{"instance"}),
		bestSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cliquetabu_best_clique_size",
			Help: "Size of the clique produced by the most recent restart",
		}, []string{"instance"}),
	}

	prometheus.MustRegister(o.restarts, o.moves, o.swaps, o.perturbs, o.bestSize)
	return o
}

// forInstance binds the shared collectors to one instance file's label,
// producing the search.Observer passed into that file's Run.
func (o *prometheusObserver) forInstance(instance string) search.Observer {
	return &instanceObserver{parent: o, instance: instance}
}

type instanceObserver struct {
	parent   *prometheusObserver
	instance string
}

func (o *instanceObserver) OnRestartStart(restart int) {
	o.parent.restarts.WithLabelValues(o.instance).Inc()
}

func (o *instanceObserver) OnMove(restart int) {
	o.parent.moves.WithLabelValues(o.instance).Inc()
}

func (o *instanceObserver) OnSwap(restart int, kind string) {
	o.parent.swaps.WithLabelValues(o.instance, kind).Inc()
}

func (o *instanceObserver) OnPerturb(restart int, removed int) {
	o.parent.perturbs.WithLabelValues(o.instance).Inc()
}

func (o *instanceObserver) OnRestartEnd(restart int, cliqueSize int) {
	o.parent.bestSize.WithLabelValues(o.instance).Set(float64(cliqueSize))
}

var _ search.Observer = (*instanceObserver)(nil)

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, mux) //nolint:errcheck // best-effort side channel, not the command's primary output
}
