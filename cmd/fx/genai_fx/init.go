package genai_fx

import (
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/fx"

	"tripvisito/pkg/utils"
)

var Module = fx.Provide(
	providePlannerClient,
	provideImageSearchClient)

type plannerConfig struct {
	Provider  string
	APIKey    string
	Model     string
	MaxTokens int
}

// providePlannerClient creates the itinerary generator based on environment
// variables. Gemini is the default provider.
func providePlannerClient() (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	return utils.NewPlannerClient(config.Provider, config.APIKey, config.Model, config.MaxTokens)
}

func provideImageSearchClient() utils.ImageSearchClientInterface {
	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		log.Fatal("UNSPLASH_ACCESS_KEY is required")
	}
	return utils.NewUnsplashClient(accessKey)
}

func getPlannerConfig() plannerConfig {
	provider := getEnvWithDefault("GENAI_PROVIDER", "gemini")

	maxTokens, err := strconv.Atoi(getEnvWithDefault("GENAI_MAX_TOKENS", "8192"))
	if err != nil || maxTokens <= 0 {
		maxTokens = 8192
	}

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return plannerConfig{
		Provider:  provider,
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
