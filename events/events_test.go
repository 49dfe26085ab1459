package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	if err := p.Publish(context.Background(), New(PatientCreated, "p-1")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "p-1" {
		t.Errorf("key = %q, want %q", msg.Key, "p-1")
	}
	var evt Event
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if evt.Type != PatientCreated || evt.EntityID != "p-1" {
		t.Errorf("unexpected event: %+v", evt)
	}
	if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != PatientCreated {
		t.Errorf("unexpected headers: %+v", msg.Headers)
	}
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}
	if err := p.Publish(context.Background(), New(RecordCreated, "r-1")); err == nil {
		t.Fatal("expected write error")
	}
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}
	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("expected writer to be closed, err=%v", err)
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.Publish(context.Background(), New(DoctorDeleted, "user_1")); err != nil {
		t.Fatal(err)
	}
}
