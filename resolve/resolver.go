package resolve

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/llmkeys/model"
	"github.com/jonwraymond/llmkeys/observe"
	"github.com/jonwraymond/llmkeys/secret"
)

// Credential sources that do not name a store.
const (
	// SourceConfig marks a key taken verbatim from the model configuration.
	SourceConfig = "config"
	// SourceNone marks a keyless resolution for providers that need no key.
	SourceNone = "none"
)

// Credential is the outcome of a successful resolution. Value is empty when
// Source is SourceNone.
type Credential struct {
	Value        string
	Source       string
	SourceDetail string
}

// ProviderLookup supplies provider metadata by id. The default is
// model.LookupProvider.
type ProviderLookup func(id string) (model.ProviderMetadata, bool)

// Resolver turns a model configuration into an effective credential by
// composing the explicit key, provider metadata, and the registered secret
// stores. It is safe for concurrent use.
type Resolver struct {
	registry *secret.Registry
	lookup   ProviderLookup
	order    []string
	logger   observe.Logger
	tracer   trace.Tracer
	meter    metric.Meter

	resolutions metric.Int64Counter
	durationMs  metric.Float64Histogram
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithRegistry sets the store registry to consult. Default: secret.DefaultRegistry.
func WithRegistry(r *secret.Registry) Option {
	return func(res *Resolver) { res.registry = r }
}

// WithLogger sets the structured logger. Default: discard.
func WithLogger(l observe.Logger) Option {
	return func(res *Resolver) { res.logger = l }
}

// WithTracer sets the OpenTelemetry tracer. Default: no-op.
func WithTracer(t trace.Tracer) Option {
	return func(res *Resolver) { res.tracer = t }
}

// WithMeter sets the OpenTelemetry meter used to build resolution
// instruments. Default: no-op.
func WithMeter(m metric.Meter) Option {
	return func(res *Resolver) { res.meter = m }
}

// WithOrder pins the store consultation order to the given names. Names not
// registered at resolution time are ignored.
func WithOrder(names ...string) Option {
	return func(res *Resolver) { res.order = names }
}

// WithProviderLookup overrides the provider metadata source.
// Default: model.LookupProvider.
func WithProviderLookup(fn ProviderLookup) Option {
	return func(res *Resolver) { res.lookup = fn }
}

// New creates a Resolver.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		registry: secret.DefaultRegistry,
		lookup:   model.LookupProvider,
		logger:   observe.NewNoopLogger(),
		tracer:   tracenoop.NewTracerProvider().Tracer("resolve"),
		meter:    metricnoop.NewMeterProvider().Meter("resolve"),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.resolutions, err = r.meter.Int64Counter(
		"resolve.credential.total",
		metric.WithDescription("Total number of credential resolutions by outcome"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, err
	}
	r.durationMs, err = r.meter.Float64Histogram(
		"resolve.credential.duration_ms",
		metric.WithDescription("Credential resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// ErrNoProvider indicates a model configuration with neither a provider id
// nor an explicit API key.
var ErrNoProvider = errors.New("resolve: model configuration has no provider")

// Resolve produces the effective credential for cfg.
//
// Precedence: an explicit cfg.APIKey wins unconditionally; providers whose
// metadata says no key is required succeed keyless; otherwise the stores are
// consulted in priority order and the first one holding the provider's
// logical key supplies the value. Unavailable stores are skipped but still
// reported as consulted. Unknown provider ids require a key.
func (r *Resolver) Resolve(ctx context.Context, cfg model.ModelConfig) (Credential, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	ctx, span := r.tracer.Start(ctx, "resolve.credential",
		trace.WithAttributes(attribute.String("resolve.provider", provider)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	start := time.Now()

	cred, err := r.resolve(ctx, provider, cfg)

	outcome := cred.Source
	if err != nil {
		outcome = "missing"
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetAttributes(attribute.String("resolve.source", cred.Source))
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	attrs := metric.WithAttributes(
		attribute.String("resolve.provider", provider),
		attribute.String("resolve.outcome", outcome),
	)
	r.resolutions.Add(ctx, 1, attrs)
	r.durationMs.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)

	return cred, err
}

func (r *Resolver) resolve(ctx context.Context, provider string, cfg model.ModelConfig) (Credential, error) {
	if cfg.APIKey != "" {
		r.logger.Debug(ctx, "credential resolved",
			observe.Field{Key: "provider", Value: provider},
			observe.Field{Key: "source", Value: SourceConfig},
		)
		return Credential{
			Value:        cfg.APIKey,
			Source:       SourceConfig,
			SourceDetail: "model configuration",
		}, nil
	}

	if provider == "" {
		return Credential{}, ErrNoProvider
	}

	if meta, known := r.lookup(provider); known && !meta.RequiresAPIKey {
		r.logger.Debug(ctx, "provider needs no API key",
			observe.Field{Key: "provider", Value: provider},
		)
		return Credential{
			Source:       SourceNone,
			SourceDetail: "provider does not require an API key",
		}, nil
	}

	var consulted []string
	for _, desc := range r.storeOrder() {
		store, ok := r.registry.Lookup(desc.Name)
		if !ok {
			continue
		}
		consulted = append(consulted, desc.Name)

		if !store.Available(ctx) {
			r.logger.Debug(ctx, "store unavailable, skipping",
				observe.Field{Key: "provider", Value: provider},
				observe.Field{Key: "store", Value: desc.Name},
			)
			continue
		}
		value, found := store.Get(ctx, provider)
		if !found {
			continue
		}

		r.logger.Debug(ctx, "credential resolved",
			observe.Field{Key: "provider", Value: provider},
			observe.Field{Key: "source", Value: desc.Name},
		)
		return Credential{
			Value:        value,
			Source:       desc.Name,
			SourceDetail: desc.Description,
		}, nil
	}

	err := &MissingCredentialError{Provider: provider, Consulted: consulted}
	r.logger.Warn(ctx, "credential missing",
		observe.Field{Key: "provider", Value: provider},
		observe.Field{Key: "consulted", Value: strings.Join(consulted, ",")},
	)
	return Credential{}, err
}

// storeOrder returns the descriptors to consult, in priority order. With no
// explicit order: plugins in registration order, then memory, then env.
func (r *Resolver) storeOrder() []secret.Descriptor {
	all := r.registry.List()

	byName := make(map[string]secret.Descriptor, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}

	if len(r.order) > 0 {
		out := make([]secret.Descriptor, 0, len(r.order))
		for _, name := range r.order {
			if d, ok := byName[name]; ok {
				out = append(out, d)
			}
		}
		return out
	}

	out := make([]secret.Descriptor, 0, len(all))
	for _, d := range all {
		if d.IsPlugin {
			out = append(out, d)
		}
	}
	for _, name := range []string{"memory", "env"} {
		if d, ok := byName[name]; ok {
			out = append(out, d)
		}
	}
	return out
}
