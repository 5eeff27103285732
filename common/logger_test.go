package common

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogger_FallsBackToStandard(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), Logger(context.Background()))
}

func TestWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := WithLogger(context.Background(), logger.WithField("job", "x"))

	Logger(ctx).Info("hello")

	if assert.Len(t, hook.Entries, 1) {
		assert.Equal(t, "hello", hook.LastEntry().Message)
		assert.Equal(t, "x", hook.LastEntry().Data["job"])
	}
}
