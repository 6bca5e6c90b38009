package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/text2speech/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer

	requestMetric   metric.Int64Counter
	durationMetric  metric.Float64Histogram
	audioSizeMetric metric.Int64Histogram
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	meter := otel.Meter(instrumentationName)

	requestMetric, _ := meter.Int64Counter("speech.synthesis.requests",
		metric.WithDescription("Number of synthesis calls"),
	)

	durationMetric, _ := meter.Float64Histogram("speech.synthesis.duration",
		metric.WithDescription("Duration of synthesis calls"),
		metric.WithUnit("s"),
	)

	audioSizeMetric, _ := meter.Int64Histogram("speech.synthesis.audio.size",
		metric.WithDescription("Size of synthesized audio"),
		metric.WithUnit("By"),
	)

	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,

		requestMetric:   requestMetric,
		durationMetric:  durationMetric,
		audioSizeMetric: audioSizeMetric,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model)
	defer span.End()

	language := ""

	if options != nil {
		language = options.Language
	}

	attrs := []KeyValue{
		String("speech.provider", p.provider),
		String("speech.model", p.model),
		String("speech.language", language),
	}

	span.SetAttributes(attrs...)
	span.SetAttributes(Int("speech.input.length", len([]rune(content))))

	timestamp := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, content, options)

	status := "ok"

	if err != nil {
		status = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	metricAttrs := metric.WithAttributes(KeyValues(attrs, []KeyValue{String("speech.status", status)})...)

	p.requestMetric.Add(ctx, 1, metricAttrs)
	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metricAttrs)

	if result != nil {
		span.SetAttributes(Int("speech.output.size", len(result.Content)))
		p.audioSizeMetric.Record(ctx, int64(len(result.Content)), metricAttrs)
	}

	return result, err
}
