// Package metrics expone los contadores Prometheus de la aplicación.
// El registro es el global de promauto; el handler /metrics lo sirve
// tal cual.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WorkingWriteRejects cuenta escrituras al almacén de trabajo
	// rechazadas por exceder el techo de tamaño.
	WorkingWriteRejects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuentas_working_store_writes_rejected_total",
		Help: "Escrituras del blob de trabajo rechazadas por tamaño.",
	})

	// WorkingWriteFailures cuenta escrituras que fallaron incluso tras
	// el reintento con el blob previo eliminado.
	WorkingWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuentas_working_store_write_failures_total",
		Help: "Escrituras del blob de trabajo fallidas tras reintento.",
	})

	// WorkingReadCorrupt cuenta lecturas del blob de trabajo que se
	// descartaron por corrupción y se trataron como vacías.
	WorkingReadCorrupt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuentas_working_store_reads_corrupt_total",
		Help: "Lecturas del blob de trabajo tratadas como vacías por corrupción.",
	})

	// PersistFailures cuenta fallas del ciclo de persistencia de la
	// plantilla activa (escritura de trabajo o commit durable).
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuentas_persist_failures_total",
		Help: "Fallas del ciclo de persistencia de la plantilla activa.",
	})
)
