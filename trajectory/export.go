package trajectory

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/rtc"
	"github.com/hupe1980/rtc/blobstore"
	"github.com/hupe1980/rtc/projectile"
)

// Exporter writes trajectories to a blob store.
type Exporter struct {
	store       blobstore.Store
	compression Compression
	logger      *rtc.Logger
	metrics     rtc.MetricsCollector
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithCompression sets the body compression. Default: Zstd.
func WithCompression(c Compression) ExporterOption {
	return func(e *Exporter) {
		e.compression = c
	}
}

// WithLogger configures structured logging for exports.
func WithLogger(l *rtc.Logger) ExporterOption {
	return func(e *Exporter) {
		if l == nil {
			l = rtc.NoopLogger()
		}
		e.logger = l
	}
}

// WithMetrics configures a metrics collector for exports.
func WithMetrics(m rtc.MetricsCollector) ExporterOption {
	return func(e *Exporter) {
		if m == nil {
			m = rtc.NoopMetricsCollector{}
		}
		e.metrics = m
	}
}

// NewExporter creates an Exporter writing to store.
func NewExporter(store blobstore.Store, optFns ...ExporterOption) *Exporter {
	e := &Exporter{
		store:       store,
		compression: Zstd,
		logger:      rtc.NoopLogger(),
		metrics:     rtc.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(e)
	}
	return e
}

// Name returns the blob name used for base, e.g. "default" -> "default.rtct.zst".
func (e *Exporter) Name(base string) string {
	return base + e.compression.Extension()
}

// Export encodes samples and stores them under Name(base).
// It returns the stored blob name.
func (e *Exporter) Export(ctx context.Context, base string, samples []projectile.Sample) (string, error) {
	start := time.Now()
	name := e.Name(base)

	data, err := Marshal(samples, e.compression)
	if err == nil {
		err = e.store.Put(ctx, name, data)
	}
	if err != nil {
		err = fmt.Errorf("export %s: %w", name, err)
	}

	e.logger.LogExport(ctx, name, len(data), err)
	e.metrics.RecordExport(len(data), time.Since(start), err)

	if err != nil {
		return "", err
	}
	return name, nil
}

// Import loads and decodes a trajectory stored under name.
// The compression is read from the file header, not from the name.
func Import(ctx context.Context, store blobstore.Store, name string) ([]projectile.Sample, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", name, err)
	}
	samples, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", name, err)
	}
	return samples, nil
}
