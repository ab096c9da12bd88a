package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldezr/welcome-api/internal/config"
	"github.com/cvaldezr/welcome-api/internal/server"
)

func TestStartRequiresSetup(t *testing.T) {
	logger := zerolog.Nop()
	srv := server.New(config.Default(), &logger)

	err := srv.Start()
	require.Error(t, err)
}

func TestShutdownWithoutSetupIsNoop(t *testing.T) {
	logger := zerolog.Nop()
	srv := server.New(config.Default(), &logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, srv.Shutdown(ctx))
}

func TestUptime(t *testing.T) {
	logger := zerolog.Nop()
	srv := server.New(config.Default(), &logger)

	time.Sleep(10 * time.Millisecond)
	assert.Greater(t, srv.Uptime(), time.Duration(0))
}
