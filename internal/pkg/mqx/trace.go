package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/recommend/internal/pkg/mqx"

// TracedMQ 发送的每条消息都会带上一个 producer span
type TracedMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracedMQ(q mq.MQ) *TracedMQ {
	return &TracedMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracedMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracedProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracedProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *tracedProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "produce", m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	t.finish(span, err)
	return res, err
}

func (t *tracedProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	t.finish(span, err)
	return res, err
}

func (t *tracedProducer) start(ctx context.Context, op string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, t.topic+" "+op, trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.operation", op),
		attribute.String("messaging.destination", t.topic),
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message_length", len(m.Value)))
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func (t *tracedProducer) finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
