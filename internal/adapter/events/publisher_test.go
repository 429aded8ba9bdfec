package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"repairhub/internal/domain/entities"
	mock_interfaces "repairhub/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleEvent() entities.LifecycleEvent {
	return entities.LifecycleEvent{
		ID:           "ev-1",
		Kind:         entities.EventEstimateAccepted,
		RequestID:    "req-1",
		CustomerID:   "cust-1",
		TechnicianID: "tech-1",
		State:        entities.StateAccepted,
		Amount:       decimal.RequireFromString("99.90"),
		OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLogPublisher_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf))

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "events", line["component"])
	assert.Equal(t, "estimate.accepted", line["kind"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "99.9", line["amount"])
	assert.Equal(t, "ACCEPTED", line["state"])
}

func TestFanoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_interfaces.NewMockIEventPublisher(ctrl)
	second := mock_interfaces.NewMockIEventPublisher(ctrl)
	ev := sampleEvent()

	boom := errors.New("broker down")
	first.EXPECT().Publish(gomock.Any(), ev).Return(boom)
	second.EXPECT().Publish(gomock.Any(), ev).Return(nil)

	f := NewFanoutPublisher(first, nil, second)
	err := f.Publish(context.Background(), ev)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, NewFanoutPublisher().Publish(context.Background(), ev))
}
