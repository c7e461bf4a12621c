package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Fallback answers returned when the text generator fails.
const (
	StrategyFallback = "Unable to generate strategy at this time. Please try again later."
	AnalysisFallback = "Profile analysis is currently unavailable."
)

const defaultAssistantPlatform = "Instagram"

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// AssistantService builds growth prompts and passes them to a text generator.
type AssistantService struct {
	generator TextGenerator
	logger    *zap.SugaredLogger
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(generator TextGenerator, logger *zap.SugaredLogger) *AssistantService {
	return &AssistantService{generator: generator, logger: logger}
}

// GrowthStrategy asks for a three-step growth plan for a niche on a platform.
// Generator failures yield StrategyFallback, never an error.
func (s *AssistantService) GrowthStrategy(ctx context.Context, niche, platform string) (string, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return "", fmt.Errorf("%w: niche is required", ErrEmptyPrompt)
	}
	platform = strings.TrimSpace(platform)
	if platform == "" {
		platform = defaultAssistantPlatform
	}

	prompt := fmt.Sprintf("Provide a 3-step social media growth strategy for a %s account on %s.\n"+
		"Keep it concise and professional. Suggest which SMM services would help most.", niche, platform)
	return s.ask(ctx, "strategy", prompt, 0.7, StrategyFallback), nil
}

// AnalyzeProfile asks for improvements to a profile description.
// Generator failures yield AnalysisFallback, never an error.
func (s *AssistantService) AnalyzeProfile(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("%w: description is required", ErrEmptyPrompt)
	}

	prompt := fmt.Sprintf("Analyze this social media profile description and suggest improvements "+
		"for better conversion and brand identity: %q", description)
	return s.ask(ctx, "analysis", prompt, 0.8, AnalysisFallback), nil
}

func (s *AssistantService) ask(ctx context.Context, kind, prompt string, temperature float32, fallback string) string {
	if s.generator == nil {
		s.logger.Warnw("text generator not configured", "kind", kind)
		return fallback
	}

	text, err := s.generator.Generate(ctx, prompt, temperature)
	if err != nil {
		s.logger.Errorw("text generation failed", "kind", kind, "error", err)
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warnw("text generation returned nothing", "kind", kind)
		return fallback
	}
	return text
}
