// Package worker_test tests the NATS worker for the text-normalizer.
package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/text-normalizer/internal/normalizer"
	"github.com/book-expert/text-normalizer/internal/worker"
)

const testSubject = "text.submitted.test"

var (
	errMockDownload = errors.New("mock download error")
	errMockUpload   = errors.New("mock upload error")
)

// mockObjectStore is a mock implementation of the ObjectStore interface.
type mockObjectStore struct {
	downloadShouldFail bool
	uploadShouldFail   bool
	storedText         []byte
	downloadedKey      string
	uploadedKey        string
	uploadedData       []byte
}

func (m *mockObjectStore) Download(_ context.Context, key string) ([]byte, error) {
	if m.downloadShouldFail {
		return nil, errMockDownload
	}

	m.downloadedKey = key

	return m.storedText, nil
}

func (m *mockObjectStore) Upload(_ context.Context, key string, data []byte) error {
	if m.uploadShouldFail {
		return errMockUpload
	}

	m.uploadedKey = key
	m.uploadedData = data

	return nil
}

func createTestNatsClient(t *testing.T) *nats.Conn {
	t.Helper()

	opts := test.DefaultTestOptions
	opts.Port = -1 // Use a random port
	natsServer := test.RunServer(&opts)

	natsConnection, err := nats.Connect(natsServer.ClientURL())
	if err != nil {
		t.Fatalf("Failed to connect to test NATS server: %v", err)
	}

	t.Cleanup(func() {
		natsConnection.Close()
		natsServer.Shutdown()
	})

	return natsConnection
}

func setupTest(t *testing.T, mockStore *mockObjectStore) (*nats.Conn, context.CancelFunc, chan error) {
	t.Helper()

	natsConnection := createTestNatsClient(t)

	testLogger, err := logger.New(t.TempDir(), "worker-test.log")
	require.NoError(t, err)

	workerInstance, err := worker.NewNatsWorker(
		natsConnection,
		testSubject,
		mockStore,
		normalizer.New(),
		normalizer.DefaultOptions(),
		testLogger,
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- workerInstance.Run(ctx)
	}()

	return natsConnection, cancel, errChan
}

func newTestEvent(textKey string) *events.TextProcessedEvent {
	return &events.TextProcessedEvent{
		Header: events.EventHeader{
			Timestamp:  time.Now(),
			WorkflowID: uuid.NewString(),
			EventID:    uuid.NewString(),
			UserID:     "",
			TenantID:   "",
		},
		TextKey:           textKey,
		PNGKey:            "",
		PageNumber:        3,
		TotalPages:        10,
		Voice:             "default",
		Seed:              0,
		NGL:               0,
		TopP:              0,
		RepetitionPenalty: 0,
		Temperature:       0,
	}
}

func TestMessageHandler_Success(t *testing.T) {
	t.Parallel()

	mockStore := &mockObjectStore{
		downloadShouldFail: false,
		uploadShouldFail:   false,
		storedText:         []byte("He paid $1 at 3:05pm"),
		downloadedKey:      "",
		uploadedKey:        "",
		uploadedData:       nil,
	}

	natsConnection, cancel, errChan := setupTest(t, mockStore)
	defer cancel()

	testEvent := newTestEvent("raw-text-key")
	eventData, err := json.Marshal(testEvent)
	require.NoError(t, err)

	replyMsg, err := natsConnection.Request(testSubject, eventData, 5*time.Second)
	require.NoError(t, err, "Request should succeed and receive a reply")

	var replyEvent events.TextProcessedEvent

	err = json.Unmarshal(replyMsg.Data, &replyEvent)
	require.NoError(t, err)

	assert.Equal(t, "raw-text-key", mockStore.downloadedKey)
	assert.Equal(t, "He paid one dollar at three oh five pm", string(mockStore.uploadedData))
	assert.NotEmpty(t, mockStore.uploadedKey, "A normalized key should have been generated and uploaded")

	assert.Equal(t, mockStore.uploadedKey, replyEvent.TextKey)
	assert.Equal(t, testEvent.Header.WorkflowID, replyEvent.Header.WorkflowID)
	assert.Equal(t, testEvent.PageNumber, replyEvent.PageNumber)
	assert.Equal(t, testEvent.Voice, replyEvent.Voice)

	cancel()

	shutdownErr := <-errChan
	assert.NoError(t, shutdownErr, "worker.Run should not error on graceful shutdown")
}

func TestMessageHandler_DownloadFailure(t *testing.T) {
	t.Parallel()

	mockStore := &mockObjectStore{
		downloadShouldFail: true,
		uploadShouldFail:   false,
		storedText:         nil,
		downloadedKey:      "",
		uploadedKey:        "",
		uploadedData:       nil,
	}

	natsConnection, cancel, errChan := setupTest(t, mockStore)
	defer cancel()

	eventData, err := json.Marshal(newTestEvent("raw-text-key"))
	require.NoError(t, err)

	_, err = natsConnection.Request(testSubject, eventData, 500*time.Millisecond)
	require.Error(t, err, "No reply is published when the download fails")

	assert.Empty(t, mockStore.uploadedKey)

	cancel()
	<-errChan
}

func TestMessageHandler_MissingTextKey(t *testing.T) {
	t.Parallel()

	mockStore := &mockObjectStore{
		downloadShouldFail: false,
		uploadShouldFail:   false,
		storedText:         []byte("some text"),
		downloadedKey:      "",
		uploadedKey:        "",
		uploadedData:       nil,
	}

	natsConnection, cancel, errChan := setupTest(t, mockStore)
	defer cancel()

	eventData, err := json.Marshal(newTestEvent(""))
	require.NoError(t, err)

	_, err = natsConnection.Request(testSubject, eventData, 500*time.Millisecond)
	require.Error(t, err, "No reply is published for an event without a text key")

	assert.Empty(t, mockStore.downloadedKey)

	cancel()
	<-errChan
}
