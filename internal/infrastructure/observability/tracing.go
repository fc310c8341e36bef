package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "storehub-server/media-pipeline"

// GetTracer returns the tracer for the media pipeline.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// JobAttributes returns common attributes for media job spans.
func JobAttributes(channel, kind, targetID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("job.channel", channel),
		attribute.String("job.kind", kind),
		attribute.String("job.target_id", targetID),
	}
}

// StartJobSpan starts a span covering the processing of one media job.
func StartJobSpan(ctx context.Context, channel, kind, targetID string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "media.job."+channel,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(JobAttributes(channel, kind, targetID)...),
	)
}

// StartStoreSpan starts a span covering one blob store call.
func StartStoreSpan(ctx context.Context, operation, kindTag string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "mediastore."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mediastore.kind_tag", kindTag)),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
