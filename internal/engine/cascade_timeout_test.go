package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardlens/internal/domain"
	"cardlens/internal/engine"
	"cardlens/internal/port"
	"cardlens/mocks"
)

func ocrAttempt() *port.ExtractionAttempt {
	return &port.ExtractionAttempt{
		Engine:  domain.EngineOCR,
		Text:    strings.Repeat("recognized statement text ", 10),
		Quality: 0.8,
		Pages:   2,
	}
}

func TestCascade_OCRRunsUnderDeadline(t *testing.T) {
	ocr := new(mocks.MockTextEngine)
	ocr.On("Name").Return(domain.EngineOCR)

	var hadDeadline bool
	ocr.On("Extract", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, hadDeadline = ctx.Deadline()
	}).Return(ocrAttempt())

	c := engine.NewCascade(engine.CascadeConfig{
		QualityThreshold: 0.6,
		MinTextChars:     10,
		OCRTimeout:       time.Minute,
	}, ocr)

	ext, err := c.Run(context.Background(), port.Document{Filename: "scan.pdf"}, false)

	require.NoError(t, err)
	assert.Equal(t, domain.EngineOCR, ext.Engine)
	assert.True(t, hadDeadline, "OCR must run under the configured deadline")
	ocr.AssertExpectations(t)
}

func TestCascade_StructuralEngineRunsWithoutDeadline(t *testing.T) {
	structural := new(mocks.MockTextEngine)
	structural.On("Name").Return(domain.EngineStructural)

	var hadDeadline bool
	structural.On("Extract", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, hadDeadline = ctx.Deadline()
	}).Return(&port.ExtractionAttempt{
		Engine:  domain.EngineStructural,
		Text:    strings.Repeat("born digital text ", 10),
		Quality: 0.9,
		Pages:   1,
	})

	c := engine.NewCascade(engine.CascadeConfig{
		QualityThreshold: 0.6,
		MinTextChars:     10,
		OCRTimeout:       time.Minute,
	}, structural)

	ext, err := c.Run(context.Background(), port.Document{Filename: "digital.pdf"}, false)

	require.NoError(t, err)
	assert.Equal(t, domain.EngineStructural, ext.Engine)
	assert.False(t, hadDeadline, "the timeout is scoped to OCR only")
	structural.AssertExpectations(t)
}
