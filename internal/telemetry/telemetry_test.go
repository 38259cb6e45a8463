package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func newTestMetrics(client *fakeCloudWatch) *CloudWatchMetrics {
	return NewCloudWatchMetrics(client, "ReelCasterTest", slog.New(slog.DiscardHandler))
}

func TestRecordScoredTicksDimensions(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := newTestMetrics(fake)

	m.RecordScoredTicks(t.Context(), "chinook", 672)

	require.Len(t, fake.inputs, 1)
	input := fake.inputs[0]
	assert.Equal(t, "ReelCasterTest", aws.ToString(input.Namespace))

	require.Len(t, input.MetricData, 1)
	datum := input.MetricData[0]
	assert.Equal(t, MetricScoredTicks, aws.ToString(datum.MetricName))
	assert.Equal(t, 672.0, aws.ToFloat64(datum.Value))
	assert.Equal(t, cwtypes.StandardUnitCount, datum.Unit)
	require.Len(t, datum.Dimensions, 1)
	assert.Equal(t, DimSpecies, aws.ToString(datum.Dimensions[0].Name))
	assert.Equal(t, "chinook", aws.ToString(datum.Dimensions[0].Value))
}

func TestRecordRunDurationUnits(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := newTestMetrics(fake)

	m.RecordRunDuration(t.Context(), 90*time.Second)

	require.Len(t, fake.inputs, 1)
	datum := fake.inputs[0].MetricData[0]
	assert.Equal(t, MetricRunDuration, aws.ToString(datum.MetricName))
	assert.Equal(t, 90000.0, aws.ToFloat64(datum.Value))
	assert.Equal(t, cwtypes.StandardUnitMilliseconds, datum.Unit)
}

func TestRecordRunOutcome(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := newTestMetrics(fake)

	m.RecordRunOutcome(t.Context(), "partial")

	require.Len(t, fake.inputs, 1)
	datum := fake.inputs[0].MetricData[0]
	assert.Equal(t, "partial", aws.ToString(datum.Dimensions[0].Value))
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	fake := &fakeCloudWatch{err: errors.New("throttled")}
	m := newTestMetrics(fake)

	// Must not panic or propagate; metric failures never break scoring.
	m.RecordUpstreamFailure(t.Context(), "tide")
	assert.Len(t, fake.inputs, 1)
}
