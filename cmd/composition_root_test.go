package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sales/cmd"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "sales",
		DBPassword: "secret",
		DBName:     "sales",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=sales password=secret dbname=sales sslmode=disable", cfg.DSN())
}

func TestNewCompositionRoot_InvalidRuleSet(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{RuleSet: "strict"}, &gorm.DB{}, discardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCompositionRoot_WithoutKafkaCountsEvents(t *testing.T) {
	app, err := cmd.NewCompositionRoot(cmd.Config{RuleSet: "original"}, &gorm.DB{}, discardLogger())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	err = app.Publisher().Publish(context.Background(), order.StateChanged{OrderID: 1, To: "Placed"})
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(app.Metrics().OrderEvents.WithLabelValues("Placed")), 0)

	assert.NotNil(t, app.CreateHTTPServer())
	assert.NotNil(t, app.CreateJobManager())
}
