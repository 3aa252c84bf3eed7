package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"np-server/api/openai"
	"np-server/models"
	"np-server/models/chat"
)

const REVIEW_SYSTEM_PROMPT = "You are a brilliant reviewer capable of understanding the provided nearby places and generating an insightful review."

const NO_PLACES_FOUND = "No places found."

const reviewInstructions = `You are an expert reviewer.
Based on the following nearby places, provide a concise and professional summary of the advantages of this unit's location.
The review should be easy for users to understand, not exceed three lines or 30 words, and evaluate each category with score starting from 0 to 10. make the score based on the nearest location as well as the number of nearest locations for each category
Generate the review in %s, please.
Review Format Example:

1. **البنوك:**  أقرب بنك 0.58 كيلومتر. **(10/10)**
2. **المطاعم:** العديد منها على بعد 0.14 كيلومتر. **(10/10)**
3. **المدارس:**  أقرب مدرسة على بعد 0.41 كيلومتر. **(9/10)**
4. **الصيدليات:** قريب جداً، أقرب صيدلية على بعد 0.59 كيلومتر. **(10/10)**
5. **الحدائق:**  عدة حدائق على بعد أقل من 1 كيلومتر. **(8/10)**
6. **الفنادق:**  بعضها على بعد 0.11 كيلومتر. **(9/10)**
7. **المقاهي:** تنوع رائع، العديد منها على بعد 0.34 كيلومتر. **(10/10)**
8. **المولات:** عدة خيارات على بعد 0.38 كيلومتر. **(8/10)**
9. **هايبرماركت:**  لم يتم العثور على هايبرماركت قريب **(0/10)**
10. **مستشفيات:**  لم يتم العثور على مستشفيات قريبه **(0/10)**

`

// SummaryGeneratorService turns aggregated places into a short generated review.
type SummaryGeneratorService struct {
	openAIApi openai.OpenAIAPI
	model     string
	language  string
	logger    *zap.Logger
}

// NewSummaryGeneratorService constructs a new SummaryGeneratorService.
func NewSummaryGeneratorService(openAIApi openai.OpenAIAPI, model, language string, logger *zap.Logger) *SummaryGeneratorService {
	return &SummaryGeneratorService{
		openAIApi: openAIApi,
		model:     model,
		language:  language,
		logger:    logger.Named("SummaryGeneratorService"),
	}
}

// BuildPrompt renders the review instructions followed by one block per category.
// Places are re-checked against the near threshold in meters.
func (s *SummaryGeneratorService) BuildPrompt(places models.PlacesByCategory) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, reviewInstructions, s.language)

	for _, cp := range places {
		fmt.Fprintf(&b, "\n%s:\n", cp.Category.Name)
		if len(cp.Places) == 0 {
			b.WriteString(NO_PLACES_FOUND + "\n")
			continue
		}
		for _, p := range cp.Places {
			km, err := p.DistanceKm()
			if err != nil {
				return "", fmt.Errorf("place %q in %s has invalid distance %q: %w", p.Name, cp.Category.Name, p.Distance, err)
			}
			if !IsNearMeters(km * 1000) {
				continue
			}
			fmt.Fprintf(&b, "- Name: %s, Address: %s, Distance: %s kilometers\n", p.Name, p.Address, FormatDistanceKm(km))
		}
	}

	return b.String(), nil
}

// Summarize asks the text-generation service for a review and returns it verbatim.
func (s *SummaryGeneratorService) Summarize(ctx context.Context, places models.PlacesByCategory) (string, error) {
	prompt, err := s.BuildPrompt(places)
	if err != nil {
		return "", err
	}

	request := chat.ChatCompletionRequest{
		Model: s.model,
		Messages: []chat.Message{
			{Role: chat.ROLE_SYSTEM, Content: REVIEW_SYSTEM_PROMPT},
			{Role: chat.ROLE_USER, Content: prompt},
		},
	}

	s.logger.Debug("Requesting review", zap.String("model", s.model), zap.Int("prompt_chars", len(prompt)))
	resp, err := s.openAIApi.CreateChatCompletion(ctx, request)
	if err != nil {
		s.logger.Error("Review generation failed", zap.Error(err))
		return "", err
	}

	review := resp.Choices[0].Message.Content
	s.logger.Info("Generated review",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return review, nil
}
