// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// GeminiService implements the SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestSpending asks the model how to allocate accumulated extra funds.
func (s *GeminiService) SuggestSpending(ctx context.Context, request *adapter.SpendingSuggestionRequest) (string, error) {
	return s.generate(ctx, s.buildSpendingPrompt(request))
}

// SuggestAllocation asks the model for a forward-looking budget plan over the
// remaining spendable balance.
func (s *GeminiService) SuggestAllocation(ctx context.Context, request *adapter.AllocationHelperRequest) (string, error) {
	return s.generate(ctx, s.buildAllocationPrompt(request))
}

func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// extractText pulls the markdown text out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	textContent := strings.TrimSpace(sb.String())
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return textContent, nil
}

// buildSpendingPrompt creates the accumulated-funds suggestion prompt.
func (s *GeminiService) buildSpendingPrompt(request *adapter.SpendingSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a friendly and encouraging financial advisor for a student in the Philippines. The user has accumulated some extra funds by spending less than their budget. Your task is to provide a suggestion on how to allocate these funds. The currency is Philippine Pesos (PHP). Keep the local context in mind (e.g., suggesting a P500 allocation is a reasonable amount for a coffee treat, but not for a major purchase).

Analyze the user's spending habits based on the provided category spending data.

Your suggestion should be:
1. Positive and Encouraging: Start by congratulating the user on having extra funds.
2. Actionable and Contextual: Provide specific ideas on where to allocate the money. You can suggest putting it towards a 'want' category they haven't spent much on, saving it, or allocating it to a 'need' category for the future. Make the suggestions relevant to a student's life in the Philippines.
3. Justified: Explain why you are making a particular suggestion, linking it to their spending patterns.
4. Forward-looking: Briefly mention the positive outcome of their choice.
5. Formatted in Markdown: Use headings (##), bold text (**text**), and unordered lists (* item) to structure the response clearly.

Here is the user's data:
`)

	sb.WriteString(fmt.Sprintf("- Accumulated Funds: P%s\n", request.AccumulatedFunds.StringFixed(2)))
	sb.WriteString("- Category Spending:\n")
	for _, cs := range request.CategorySpending {
		sb.WriteString(fmt.Sprintf("  - %s: P%s\n", cs.Name, cs.Spent.StringFixed(2)))
	}

	sb.WriteString("\nGenerate a helpful and motivating suggestion now.\n")
	return sb.String()
}

// buildAllocationPrompt creates the budget-allocation helper prompt.
func (s *GeminiService) buildAllocationPrompt(request *adapter.AllocationHelperRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert financial planner for a student in the Philippines. You are empathetic, realistic, and your goal is to be helpful. The currency is Philippine Pesos (PHP).

Your main task is to create a realistic forward-looking spending plan for the user's remaining spendable funds. Do not judge past spending.

CRITICAL RULES:
1. Use ONLY Existing Categories: You MUST allocate funds ONLY to the categories provided in the category spending list. DO NOT invent new categories.
2. Re-assign Specific Costs: If the user's context mentions a specific cost, identify the most logical EXISTING category for that cost, add it to that category's allocation, and explain why.
3. Acknowledge Pre-Allocated Funds: Start by stating the amounts the user has already set aside for Savings and Sinking Funds. Make it clear these are NOT part of the new spending plan you are creating.
4. Work with Remaining Spendable Funds: The budget you create must be based on the remaining spendable balance. The percentages you suggest must total 100% of this remaining balance.
5. Prioritize Needs, Always: Essential "need" categories (like Food, Transport) MUST receive a portion of the remaining funds.
6. Include PHP Amounts: For each category suggestion, you MUST include the calculated PHP amount. The total of your suggested PHP amounts must equal the remaining balance.
7. Suggest Sinking Funds (Optional): Analyze the recent expenses for patterns in 'want' spending. If you see recurring purchases for a specific goal, you can suggest creating a sinking fund.
8. Format as Markdown: Your entire response must be a single markdown string.
`)

	if request.UserContext != "" {
		sb.WriteString(fmt.Sprintf("9. Consider User Context Heavily: %q\n", request.UserContext))
	}

	totalSinkingFunds := decimal.Zero
	for _, f := range request.SinkingFunds {
		totalSinkingFunds = totalSinkingFunds.Add(f.CurrentAmount)
	}

	sb.WriteString("\nUSER DATA:\n")
	sb.WriteString(fmt.Sprintf("- Total Allowance: P%s\n", request.Allowance.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Amount in Savings: P%s\n", request.SavingsAmount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Amount in Sinking Funds: P%s\n", totalSinkingFunds.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Remaining Spendable Balance to Budget: P%s\n", request.RemainingBalance.StringFixed(2)))

	sb.WriteString("- Existing Sinking Funds:\n")
	if len(request.SinkingFunds) == 0 {
		sb.WriteString("  - None yet.\n")
	}
	for _, f := range request.SinkingFunds {
		sb.WriteString(fmt.Sprintf("  - %s (Target: P%s)\n", f.Name, f.TargetAmount.StringFixed(2)))
	}

	sb.WriteString("- Categories to Budget For (and current spending for context):\n")
	for _, cs := range request.CategorySpending {
		sb.WriteString(fmt.Sprintf("  - %s (Type: %s): Spent P%s so far.\n", cs.Name, cs.Classification, cs.Spent.StringFixed(2)))
	}

	sb.WriteString("- Recent Expense History (to understand habits):\n")
	for _, re := range request.RecentExpenses {
		sb.WriteString(fmt.Sprintf("  - %s: P%s on %s (Category: %s)\n", re.Date, re.Amount.StringFixed(2), re.Name, re.CategoryName))
	}

	sb.WriteString("\nGenerate the markdown suggestion now.\n")
	return sb.String()
}
