package database

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/recommend/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给推荐服务的读库操作打点。
// 推荐服务只读业务库，所以只关心 Query、Row 和 Raw 三类回调
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("tracing:after_query", p.after); err != nil {
		return err
	}
	// Scan 走的是 Row 回调
	if err := cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("SELECT")); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("tracing:after_row", p.after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		name := op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	span.SetAttributes(spanAttributes(db)...)
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func spanAttributes(db *gorm.DB) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.operation", operation(db.Statement.SQL.String())),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	return attrs
}

func operation(sql string) string {
	sql = strings.TrimSpace(sql)
	idx := strings.IndexByte(sql, ' ')
	if idx <= 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(sql[:idx])
}
