package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestReportError_ConfigErrorGetsHint(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, domain.NewNotConfiguredError())
	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), setupHint)

	buf.Reset()
	reportError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestNewResolver(t *testing.T) {
	cfg := llm.DefaultConfig()
	assert.False(t, newResolver(cfg, logger.Discard()).AIEnabled())

	cfg.Enabled = true
	assert.True(t, newResolver(cfg, logger.Discard()).AIEnabled())

	cfg.Provider = llm.ProviderAnthropic
	cfg.APIKey = ""
	assert.False(t, newResolver(cfg, logger.Discard()).AIEnabled())
}
