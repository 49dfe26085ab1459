package handlers

import (
	"UnifyMD/agent"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newChatRouter(executor agent.Executor) *gin.Engine {
	r := gin.New()
	r.POST("/api/bot", NewChatHandler(executor).Chat)
	return r
}

func TestChat_RelaysOutput(t *testing.T) {
	exec := &fakeExecutor{output: agent.Response{"output": "Take rest and fluids."}}
	r := newChatRouter(exec)

	w := perform(r, http.MethodPost, "/api/bot", "application/json", `{"message":"I have a cold"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if exec.input != "I have a cold" {
		t.Errorf("unexpected agent input %q", exec.input)
	}
	var body struct {
		Message map[string]string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message["output"] != "Take rest and fluids." {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestChat_NoExecutor(t *testing.T) {
	r := newChatRouter(nil)

	w := perform(r, http.MethodPost, "/api/bot", "application/json", `{"message":"hi"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	r := newChatRouter(&fakeExecutor{})

	w := perform(r, http.MethodPost, "/api/bot", "application/json", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChat_AgentFailure(t *testing.T) {
	r := newChatRouter(&fakeExecutor{err: errors.New("agent returned status 500")})

	w := perform(r, http.MethodPost, "/api/bot", "application/json", `{"message":"hi"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
