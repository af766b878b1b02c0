package classifier

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Categories is the closed set of expense categories; the model must
// pick one of these, anything else degrades to Other.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Healthcare",
	"Entertainment",
	"Travel",
	"Education",
	"Investment",
	"Other",
}

// Result carries the chosen category and how sure we are of it.
type Result struct {
	Category   string
	Confidence string
}

type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Classifier categorizes expense descriptions, preferring the OpenAI
// chat API and falling back to keyword rules when the API is
// unavailable or misbehaves.
type Classifier struct {
	api completionAPI
	log *logrus.Logger
}

func New(apiKey string, log *logrus.Logger) *Classifier {
	c := &Classifier{log: log}
	if apiKey != "" {
		c.api = openai.NewClient(apiKey)
	}
	return c
}

// Categorize returns a category for the description. It never fails:
// errors degrade to the rules engine and ultimately to Other.
func (c *Classifier) Categorize(ctx context.Context, description string, amount float64) Result {
	if c.api == nil {
		return c.categorizeByRules(description)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a financial assistant. Categorize expenses into one of these categories: " +
					strings.Join(Categories, ", ") +
					". Respond with ONLY the category name, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Categorize this expense: '%s' amount: %.2f", description, amount),
			},
		},
		MaxTokens: 16,
	})
	if err != nil {
		c.log.Errorf("AI categorization failed: %v", err)
		return c.categorizeByRules(description)
	}
	if len(resp.Choices) == 0 {
		return c.categorizeByRules(description)
	}

	category := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !validCategory(category) {
		return Result{Category: "Other", Confidence: "low"}
	}
	return Result{Category: category, Confidence: "high"}
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

var keywordRules = []struct {
	category string
	keywords []string
}{
	{"Food & Dining", []string{"restaurant", "swiggy", "zomato", "cafe", "coffee", "pizza", "food", "dining", "lunch", "dinner", "grocery", "groceries"}},
	{"Transportation", []string{"uber", "ola", "taxi", "metro", "bus", "train", "fuel", "petrol", "diesel", "parking", "toll"}},
	{"Shopping", []string{"amazon", "flipkart", "myntra", "mall", "store", "clothes", "shoes", "shopping"}},
	{"Bills & Utilities", []string{"electricity", "water bill", "gas bill", "broadband", "wifi", "recharge", "mobile bill", "dth", "utility"}},
	{"Healthcare", []string{"hospital", "doctor", "pharmacy", "medicine", "clinic", "lab test", "dental"}},
	{"Entertainment", []string{"netflix", "spotify", "movie", "cinema", "game", "concert", "hotstar", "prime video"}},
	{"Travel", []string{"flight", "hotel", "airbnb", "booking", "trip", "vacation", "holiday", "visa"}},
	{"Education", []string{"course", "tuition", "school", "college", "udemy", "books", "exam", "coaching"}},
	{"Investment", []string{"sip", "mutual fund", "stocks", "shares", "gold", "fd", "deposit", "nps", "ppf"}},
}

func (c *Classifier) categorizeByRules(description string) Result {
	desc := strings.ToLower(description)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return Result{Category: rule.category, Confidence: "medium"}
			}
		}
	}
	return Result{Category: "Other", Confidence: "low"}
}
