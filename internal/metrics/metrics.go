package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/buildregion/internal/logging"
)

// Metrics содержит Prometheus-метрики валидатора кликов и контроллера региона.
// Все методы безопасно вызывать на nil: тогда метрики просто не пишутся.
//
// Метрики:
// * buildregion_click_decisions_total{kind,decision} - counter
// * buildregion_commands_total{command,result} - counter
// * buildregion_active_region{type} - gauge (1 у активного типа)
// * buildregion_active_region_volume - gauge
// * buildregion_process_* - gauge, обновляются UpdateProcess
// * buildregion_http_request_duration_seconds{code,method} - histogram эндпоинта /metrics
// * buildregion_http_requests_inflight - gauge
type Metrics struct {
	Registry *prometheus.Registry

	clickDecisions *prometheus.CounterVec
	commands       *prometheus.CounterVec
	activeRegion   *prometheus.GaugeVec
	regionVolume   prometheus.Gauge

	processMemory prometheus.Gauge
	processCPU    prometheus.Gauge
	uptime        prometheus.Gauge

	httpDuration *prometheus.HistogramVec
	httpInflight prometheus.Gauge

	process *ProcessStats
}

// New создаёт метрики в собственном регистре
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		clickDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buildregion",
			Name:      "click_decisions_total",
			Help:      "Решения валидатора кликов.",
		}, []string{"kind", "decision"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buildregion",
			Name:      "commands_total",
			Help:      "Команды контроллера региона по результату.",
		}, []string{"command", "result"}),
		activeRegion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "active_region",
			Help:      "Тип активного региона (1 у активного).",
		}, []string{"type"}),
		regionVolume: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "active_region_volume",
			Help:      "Объём активного региона в блоках (+Inf для плоскости).",
		}),
		processMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "process_memory_mb",
			Help:      "Память, выделенная процессом, MB.",
		}),
		processCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "process_cpu_percent",
			Help:      "Загрузка CPU процессом, %.",
		}),
		uptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "uptime_seconds",
			Help:      "Время работы процесса.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "buildregion",
			Name:      "http_request_duration_seconds",
			Help:      "Длительность HTTP-запросов к /metrics.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"code", "method"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "buildregion",
			Name:      "http_requests_inflight",
			Help:      "Текущее количество обрабатываемых HTTP-запросов.",
		}),
		process: NewProcessStats(),
	}

	m.Registry.MustRegister(
		m.clickDecisions, m.commands, m.activeRegion, m.regionVolume,
		m.processMemory, m.processCPU, m.uptime,
		m.httpDuration, m.httpInflight,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveClick учитывает решение валидатора
func (m *Metrics) ObserveClick(kind string, allowed bool) {
	if m == nil {
		return
	}
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	m.clickDecisions.WithLabelValues(kind, decision).Inc()
}

// ObserveCommand учитывает выполнение команды контроллера
func (m *Metrics) ObserveCommand(command, result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, result).Inc()
}

// SetActiveRegion отмечает тип и объём активного региона; "none" - региона нет
func (m *Metrics) SetActiveRegion(regionType string, volume float64) {
	if m == nil {
		return
	}
	m.activeRegion.Reset()
	m.activeRegion.WithLabelValues(regionType).Set(1)
	m.regionVolume.Set(volume)
}

// UpdateProcess обновляет метрики процесса
func (m *Metrics) UpdateProcess() {
	if m == nil {
		return
	}
	m.uptime.Set(time.Since(m.process.StartTime).Seconds())
	if mb, err := m.process.GetMemoryUsage(); err == nil {
		m.processMemory.Set(mb)
	}
	if cpu, err := m.process.GetCPUUsage(); err == nil {
		m.processCPU.Set(cpu)
	} else {
		logging.Debug("метрика CPU недоступна: %v", err)
	}
}

// Process возвращает сборщик статистики процесса
func (m *Metrics) Process() *ProcessStats {
	return m.process
}

// Handler возвращает HTTP-обработчик /metrics для собственного регистра.
// Сам обработчик тоже измеряется.
func (m *Metrics) Handler() http.Handler {
	h := promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
	return promhttp.InstrumentHandlerInFlight(m.httpInflight,
		promhttp.InstrumentHandlerDuration(m.httpDuration, h))
}

// Serve запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий. Возвращает функцию остановки сервера.
func (m *Metrics) Serve(addr string) func(context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
	return srv.Shutdown
}
