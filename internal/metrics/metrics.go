// Package metrics counts interpreter activity with prometheus collectors.
package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"gmldraw/internal/interpreter"
)

type Metrics struct {
	Registry    *prometheus.Registry
	Commands    *prometheus.CounterVec
	Diagnostics *prometheus.CounterVec
	Aborted     prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gml_commands_total",
				Help: "GML commands executed, by letter",
			},
			[]string{"letter"},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gml_diagnostics_total",
				Help: "Problems reported while interpreting, by kind",
			},
			[]string{"kind"},
		),
		Aborted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gml_aborted_strings_total",
			Help: "Command strings abandoned after a missing argument",
		}),
	}
	m.Registry.MustRegister(m.Commands, m.Diagnostics, m.Aborted)
	return m
}

// Hooks returns interpreter hooks that feed the counters.
func (m *Metrics) Hooks() interpreter.Hooks {
	return interpreter.Hooks{
		OnCommand: func(t interpreter.Token) {
			m.Commands.WithLabelValues(string(t.Letter)).Inc()
		},
		OnDiagnostic: func(d interpreter.Diagnostic) {
			kind := "unknown_command"
			if errors.Is(d, interpreter.ErrUnexpectedCharacter) {
				kind = "unexpected_character"
			}
			m.Diagnostics.WithLabelValues(kind).Inc()
			if d.Fatal() {
				m.Aborted.Inc()
			}
		},
	}
}

// WriteText dumps every registered metric in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
