package archive

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpov/metricserve/internal/app/server/metrics"
	"github.com/mkarpov/metricserve/internal/app/server/render"
)

func TestNewRejectsMalformedDSN(t *testing.T) {
	logger, _ := test.NewNullLogger()
	serializer := render.NewSerializer(metrics.NewRegistry(), nil, logger, render.Milliseconds, false)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	archiver, err := New(ctx, "://not-a-dsn", serializer, time.Minute, logger)
	require.Error(t, err)
	assert.Nil(t, archiver)
	assert.Contains(t, err.Error(), "DSN")
}
