// Package telemetry publishes poller run metrics to CloudWatch. Metric
// emission is best-effort: failures are logged and never propagate into the
// scoring path.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric and dimension names.
const (
	MetricRunDuration     = "ScoreRunDuration"
	MetricScoredTicks     = "ScoredTicks"
	MetricRunOutcome      = "ScoreRunOutcome"
	MetricUpstreamFailure = "UpstreamFailure"

	DimOutcome  = "Outcome"
	DimProvider = "Provider"
	DimSpecies  = "Species"
)

// CloudWatchClient abstracts the CloudWatch PutMetricData operation for
// testability.
type CloudWatchClient interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// RunMetrics is the metric surface the poller and API report into.
type RunMetrics interface {
	RecordRunDuration(ctx context.Context, d time.Duration)
	RecordScoredTicks(ctx context.Context, species string, count int)
	RecordRunOutcome(ctx context.Context, outcome string)
	RecordUpstreamFailure(ctx context.Context, provider string)
}

// CloudWatchMetrics implements RunMetrics against CloudWatch.
type CloudWatchMetrics struct {
	client    CloudWatchClient
	namespace string
	logger    *slog.Logger
}

var _ RunMetrics = (*CloudWatchMetrics)(nil)

// NewCloudWatchMetrics creates a publisher into the given namespace.
func NewCloudWatchMetrics(client CloudWatchClient, namespace string, logger *slog.Logger) *CloudWatchMetrics {
	return &CloudWatchMetrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// RecordRunDuration emits the wall-clock duration of one poller run.
func (m *CloudWatchMetrics) RecordRunDuration(ctx context.Context, d time.Duration) {
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(MetricRunDuration),
		Value:      aws.Float64(float64(d.Milliseconds())),
		Unit:       cwtypes.StandardUnitMilliseconds,
	})
}

// RecordScoredTicks emits the number of (sample, species) pairs scored,
// dimensioned by species.
func (m *CloudWatchMetrics) RecordScoredTicks(ctx context.Context, species string, count int) {
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(MetricScoredTicks),
		Value:      aws.Float64(float64(count)),
		Unit:       cwtypes.StandardUnitCount,
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String(DimSpecies), Value: aws.String(species)},
		},
	})
}

// RecordRunOutcome emits one count per run with an Outcome dimension of
// "succeeded", "partial" or "failed".
func (m *CloudWatchMetrics) RecordRunOutcome(ctx context.Context, outcome string) {
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(MetricRunOutcome),
		Value:      aws.Float64(1),
		Unit:       cwtypes.StandardUnitCount,
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String(DimOutcome), Value: aws.String(outcome)},
		},
	})
}

// RecordUpstreamFailure counts provider call failures, dimensioned by
// provider ("weather" or "tide").
func (m *CloudWatchMetrics) RecordUpstreamFailure(ctx context.Context, provider string) {
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(MetricUpstreamFailure),
		Value:      aws.Float64(1),
		Unit:       cwtypes.StandardUnitCount,
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String(DimProvider), Value: aws.String(provider)},
		},
	})
}

func (m *CloudWatchMetrics) put(ctx context.Context, datum cwtypes.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []cwtypes.MetricDatum{datum},
	}
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.WarnContext(ctx, "failed to publish metric",
			"metric", aws.ToString(datum.MetricName),
			"error", err,
		)
	}
}

// NoopMetrics discards all metrics, used when telemetry is disabled.
type NoopMetrics struct{}

var _ RunMetrics = NoopMetrics{}

func (NoopMetrics) RecordRunDuration(context.Context, time.Duration) {}
func (NoopMetrics) RecordScoredTicks(context.Context, string, int) {}
func (NoopMetrics) RecordRunOutcome(context.Context, string) {}
func (NoopMetrics) RecordUpstreamFailure(context.Context, string) {}
