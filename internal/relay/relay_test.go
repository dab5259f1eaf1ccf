package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type recordingEmitter struct {
	events []emittedEvent
}

type emittedEvent struct {
	event string
	data  string
}

func (r *recordingEmitter) Emit(event, data string) error {
	r.events = append(r.events, emittedEvent{event: event, data: data})
	return nil
}

// flakyWebhook fails the first failures requests, then accepts.
func flakyWebhook(t *testing.T, failures int64, calls *int64, gotPayloads *[]relayRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(calls, 1)

		var payload relayRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if gotPayloads != nil {
			*gotPayloads = append(*gotPayloads, payload)
		}

		if n <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func newTestForwarder(t *testing.T, url string, sleeps *[]time.Duration) *Forwarder {
	t.Helper()

	sleepFn := func(d time.Duration) {
		if sleeps != nil {
			*sleeps = append(*sleeps, d)
		}
	}
	forwarder, err := newForwarder(url, resty.New(), sleepFn, zap.NewNop())
	if err != nil {
		t.Fatalf("newForwarder() error = %v", err)
	}
	return forwarder
}

func TestRelayFirstAttemptSucceeds(t *testing.T) {
	t.Parallel()

	var calls int64
	var payloads []relayRequest
	server := flakyWebhook(t, 0, &calls, &payloads)
	defer server.Close()

	var sleeps []time.Duration
	forwarder := newTestForwarder(t, server.URL, &sleeps)
	emitter := &recordingEmitter{}

	forwarder.Relay(context.Background(), "client-1", "hola", emitter)

	if calls != 1 {
		t.Errorf("webhook calls = %d, want 1", calls)
	}
	if len(sleeps) != 0 {
		t.Errorf("sleeps = %d, want 0", len(sleeps))
	}
	if len(emitter.events) != 0 {
		t.Errorf("emitted events = %d, want 0", len(emitter.events))
	}
	if payloads[0].Sender != "client-1" || payloads[0].Message != "hola" {
		t.Errorf("payload = %+v, want sender/message preserved", payloads[0])
	}
}

func TestRelayRecoversAfterFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		failures int64
	}{
		{name: "one failure", failures: 1},
		{name: "three failures", failures: 3},
		{name: "six failures", failures: 6},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var calls int64
			var payloads []relayRequest
			server := flakyWebhook(t, tc.failures, &calls, &payloads)
			defer server.Close()

			var sleeps []time.Duration
			forwarder := newTestForwarder(t, server.URL, &sleeps)
			emitter := &recordingEmitter{}

			forwarder.Relay(context.Background(), "client-1", "hola", emitter)

			if calls != tc.failures+1 {
				t.Errorf("webhook calls = %d, want %d", calls, tc.failures+1)
			}
			if int64(len(sleeps)) != tc.failures {
				t.Errorf("sleeps = %d, want %d", len(sleeps), tc.failures)
			}
			for i, d := range sleeps {
				if d != 1000*time.Millisecond {
					t.Errorf("sleep %d = %v, want 1s", i, d)
				}
			}
			if len(emitter.events) != 0 {
				t.Errorf("emitted events = %d, want 0 on eventual success", len(emitter.events))
			}
			// Retries resend the identical payload.
			for i, p := range payloads {
				if p.Sender != "client-1" || p.Message != "hola" {
					t.Errorf("payload %d = %+v, want unchanged", i, p)
				}
			}
		})
	}
}

func TestRelayExhaustsAttempts(t *testing.T) {
	t.Parallel()

	var calls int64
	server := flakyWebhook(t, int64(maxAttempts)+10, &calls, nil)
	defer server.Close()

	var sleeps []time.Duration
	forwarder := newTestForwarder(t, server.URL, &sleeps)
	emitter := &recordingEmitter{}

	forwarder.Relay(context.Background(), "client-1", "hola", emitter)

	if calls != maxAttempts {
		t.Errorf("webhook calls = %d, want %d", calls, maxAttempts)
	}
	if len(sleeps) != maxAttempts-1 {
		t.Errorf("sleeps = %d, want %d", len(sleeps), maxAttempts-1)
	}
	if len(emitter.events) != 1 {
		t.Fatalf("emitted events = %d, want exactly 1", len(emitter.events))
	}
	if emitter.events[0].event != BotMessageEvent {
		t.Errorf("event = %q, want %q", emitter.events[0].event, BotMessageEvent)
	}
	if emitter.events[0].data != FailureMessage {
		t.Errorf("data = %q, want fixed failure message", emitter.events[0].data)
	}
}

func TestRelayUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	// Point at a closed port: every attempt errors at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var sleeps []time.Duration
	forwarder := newTestForwarder(t, url, &sleeps)
	emitter := &recordingEmitter{}

	forwarder.Relay(context.Background(), "client-1", "hola", emitter)

	if len(sleeps) != maxAttempts-1 {
		t.Errorf("sleeps = %d, want %d", len(sleeps), maxAttempts-1)
	}
	if len(emitter.events) != 1 || emitter.events[0].data != FailureMessage {
		t.Errorf("events = %+v, want single failure message", emitter.events)
	}
}

func TestNewForwarderValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewForwarder("", zap.NewNop()); err == nil {
		t.Error("NewForwarder(empty url) expected error")
	}
	if _, err := NewForwarder("not a url", zap.NewNop()); err == nil {
		t.Error("NewForwarder(invalid url) expected error")
	}
	if _, err := newForwarder("http://example.com/webhook", nil, nil, zap.NewNop()); err == nil {
		t.Error("newForwarder(nil client) expected error")
	}
}
