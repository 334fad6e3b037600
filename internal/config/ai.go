package config

type AI string

const (
	AIGemini AI = "gemini"
	AIOpenAI AI = "openai"
)

type Model string

const (
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"

	ModelGPTV4o     Model = "gpt-4o"
	ModelGPTV4oMini Model = "gpt-4o-mini"
)

func SupportedAIs() []AI {
	return []AI{
		AIGemini,
		AIOpenAI,
	}
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGemini:
		return []Model{
			ModelGeminiV25Pro,
			ModelGeminiV25Flash,
			ModelGeminiV25FlashLite,
		}
	case AIOpenAI:
		return []Model{
			ModelGPTV4o,
			ModelGPTV4oMini,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	switch ai {
	case AIGemini:
		return ModelGeminiV25Flash
	case AIOpenAI:
		return ModelGPTV4oMini
	default:
		return ""
	}
}

func IsSupportedAI(name string) bool {
	for _, ai := range SupportedAIs() {
		if string(ai) == name {
			return true
		}
	}
	return false
}
