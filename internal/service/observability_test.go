package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	observeUseCase(context.Background(), obs, "add-exercise", time.Now(), map[string]any{"name": "Squat"}, nil)
	assert.Contains(t, buf.String(), "use_case=add-exercise")
	assert.Contains(t, buf.String(), "success=true")
	assert.Contains(t, buf.String(), "name=Squat")

	buf.Reset()
	observeUseCase(context.Background(), obs, "update-set", time.Now(), nil, errors.New("locked"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=locked")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
