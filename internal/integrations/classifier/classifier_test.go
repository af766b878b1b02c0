package classifier

import (
	"context"
	"errors"
	"io"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAPI struct {
	reply string
	err   error
}

func (f *fakeAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestCategorize_ModelAnswer(t *testing.T) {
	c := &Classifier{api: &fakeAPI{reply: "Food & Dining"}, log: testLogger()}
	got := c.Categorize(context.Background(), "Dinner at Olive Garden", 1200)
	if got.Category != "Food & Dining" || got.Confidence != "high" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestCategorize_InvalidModelAnswer(t *testing.T) {
	c := &Classifier{api: &fakeAPI{reply: "Restaurants"}, log: testLogger()}
	got := c.Categorize(context.Background(), "Dinner", 1200)
	if got.Category != "Other" || got.Confidence != "low" {
		t.Errorf("invalid category should degrade to Other/low, got %+v", got)
	}
}

func TestCategorize_APIErrorFallsBackToRules(t *testing.T) {
	c := &Classifier{api: &fakeAPI{err: errors.New("rate limited")}, log: testLogger()}
	got := c.Categorize(context.Background(), "Uber to airport", 450)
	if got.Category != "Transportation" || got.Confidence != "medium" {
		t.Errorf("expected rules fallback Transportation/medium, got %+v", got)
	}
}

func TestCategorize_NoAPIKeyUsesRules(t *testing.T) {
	c := New("", testLogger())

	tests := []struct {
		description string
		want        string
	}{
		{"Swiggy order", "Food & Dining"},
		{"Petrol refill", "Transportation"},
		{"Amazon purchase", "Shopping"},
		{"Electricity bill August", "Bills & Utilities"},
		{"Apollo pharmacy", "Healthcare"},
		{"Netflix subscription", "Entertainment"},
		{"Flight to Goa", "Travel"},
		{"Udemy course", "Education"},
		{"Monthly SIP", "Investment"},
		{"Misc cash withdrawal", "Other"},
	}
	for _, tt := range tests {
		got := c.Categorize(context.Background(), tt.description, 100)
		if got.Category != tt.want {
			t.Errorf("%q: got %q, want %q", tt.description, got.Category, tt.want)
		}
	}
}

func TestCategorize_RulesAreCaseInsensitive(t *testing.T) {
	c := New("", testLogger())
	got := c.Categorize(context.Background(), "ZOMATO ORDER #1234", 350)
	if got.Category != "Food & Dining" {
		t.Errorf("expected Food & Dining, got %q", got.Category)
	}
}
