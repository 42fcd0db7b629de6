package guidance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient answers every Generate call with a fixed text or error.
type stubClient struct {
	text    string
	err     error
	lastReq llm.GenerateRequest
}

func (s *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub-model"}, nil
}

func (s *stubClient) Available(context.Context) bool { return s.err == nil }
func (s *stubClient) Model() string                 { return "stub-model" }

func TestLLMProvider_Meditation_Success(t *testing.T) {
	client := &stubClient{text: `{"title":"Soft Landing","duration":"5 minutes","script":"Breathe into the belly."}`}
	p := NewLLMProvider(client)

	m, err := p.GenerateMeditation(context.Background(), domain.PhaseMenstrual, []string{"Cramps", "Tired"}, 2)
	require.NoError(t, err)

	assert.Equal(t, "Soft Landing", m.Title)
	assert.Equal(t, "Breathe into the belly.", m.Script)
	assert.Equal(t, SourceAI, m.Source)
	assert.Equal(t, "stub-model", m.Model)

	assert.Equal(t, llm.TaskMeditation, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Cycle phase: Menstrual")
	assert.Contains(t, client.lastReq.UserPrompt, "Symptoms: Cramps, Tired")
	assert.Contains(t, client.lastReq.UserPrompt, "Energy level: 2/5")
}

func TestLLMProvider_MealPlan_NoSymptomsPromptsNone(t *testing.T) {
	client := &stubClient{text: "```json\n" + `{"breakfast":"a","lunch":"b","dinner":"c","snacks":"d","rationale":"e"}` + "\n```"}

	plan, err := NewLLMProvider(client).GenerateMealPlan(context.Background(), domain.PhaseLuteal, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", plan.Breakfast)
	assert.Equal(t, "e", plan.Rationale)
	assert.Contains(t, client.lastReq.UserPrompt, "Current symptoms: None")
}

func TestLLMProvider_Remedy_CarriesSymptom(t *testing.T) {
	client := &stubClient{text: `{"remedy":"🔥 Heat pad","instructions":"20 minutes on the lower belly.","rationale":"Heat relaxes uterine muscle."}`}

	r, err := NewLLMProvider(client).GenerateRemedy(context.Background(), "Cramps")
	require.NoError(t, err)
	assert.Equal(t, "Cramps", r.Symptom)
	assert.Equal(t, "🔥 Heat pad", r.Remedy)
	assert.Equal(t, "Symptom: Cramps", client.lastReq.UserPrompt)
}

func TestLLMProvider_ContractViolations(t *testing.T) {
	cases := map[string]string{
		"free text":     "**Remedy:** 🔥 Heat\n**How:** apply heat\n**Why it works:** muscles relax",
		"missing field": `{"remedy":"Heat","instructions":"","rationale":"x"}`,
		"extra field":   `{"remedy":"Heat","instructions":"x","rationale":"y","dose":"2"}`,
		"malformed":     `{"remedy":"Heat",`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLLMProvider(&stubClient{text: text}).GenerateRemedy(context.Background(), "Cramps")

			var perr *ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "remedy", perr.Op)
			assert.ErrorIs(t, err, llm.ErrInvalidOutput)
			assert.Equal(t, "INVALID_OUTPUT", perr.Code())
		})
	}
}

func TestLLMProvider_TransportErrorIsProviderError(t *testing.T) {
	_, err := NewLLMProvider(&stubClient{err: llm.ErrUnavailable}).GenerateMealPlan(context.Background(), domain.PhaseOvulation, nil)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "meal_plan", perr.Op)
	assert.Equal(t, "UNAVAILABLE", perr.Code())
}

func TestLLMProvider_OverOllamaHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": `{"title":"Rooted","duration":"7 minutes","script":"Feel the floor."}`,
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL

	m, err := NewLLMProvider(llm.NewOllamaClient(cfg, nil)).GenerateMeditation(context.Background(), domain.PhaseLuteal, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, "Rooted", m.Title)
	assert.Equal(t, "llama3.2", m.Model)
}
