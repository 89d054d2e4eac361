package services

import "eventpulse/internal/domain"

// FallbackEvents is the static substitute data set served when the external
// source is unavailable or returns nothing. The feed must always hand the
// presentation layer a usable list, so source failures degrade here instead
// of surfacing as errors. Start times are kept in the human-written form
// these records originally shipped with.
func FallbackEvents() []domain.Event {
	return []domain.Event{
		{
			ID:          "1",
			Title:       "Crypto Builders Meetup Buenos Aires",
			StartAt:     "July 15, 2025 - 6:00 PM",
			Timezone:    "UTC",
			Location:    "Palermo, Buenos Aires",
			Link:        "https://lu.ma/cryptobuildersba",
			Tags:        []string{"crypto"},
			Description: "Join the top crypto builders in Buenos Aires for an evening of networking, lightning talks, and collaboration. Learn about the latest DeFi protocols and Layer 2 strategies while connecting with local developers and founders.",
		},
		{
			ID:          "2",
			Title:       "AI Hackathon: LLM Agents",
			StartAt:     "July 22, 2025 - 10:00 AM",
			Timezone:    "UTC",
			Location:    "Remote",
			Link:        "https://lu.ma/aihacks",
			Tags:        []string{"ai"},
			Description: "Build the next generation of AI agents using large language models in this intensive 48-hour hackathon. Remote participation is welcome, and we'll provide mentorship from industry experts.",
		},
		{
			ID:          "3",
			Title:       "Solidity Bootcamp for Builders",
			StartAt:     "July 25, 2025 - 2:00 PM",
			Timezone:    "UTC",
			Location:    "Online",
			Link:        "https://lu.ma/soliditycamp",
			Tags:        []string{"crypto", "dev"},
			Description: "Intensive bootcamp covering smart contract development, security best practices, and DeFi protocols. Includes hands-on coding exercises, security auditing techniques, and real-world case studies.",
		},
		{
			ID:          "4",
			Title:       "Machine Learning in Production",
			StartAt:     "August 1, 2025 - 9:00 AM",
			Timezone:    "UTC",
			Location:    "San Francisco, CA",
			Link:        "https://lu.ma/mlproduction",
			Tags:        []string{"ai", "dev"},
			Description: "Learn how to deploy and scale machine learning models in production environments with confidence. Covers the entire ML operations pipeline, from model training and validation to deployment and monitoring.",
		},
		{
			ID:          "5",
			Title:       "DeFi Security Workshop",
			StartAt:     "August 5, 2025 - 1:00 PM",
			Timezone:    "UTC",
			Location:    "New York, NY",
			Link:        "https://lu.ma/defisecurity",
			Tags:        []string{"crypto"},
			Description: "Hands-on workshop covering common vulnerabilities in DeFi protocols and how to prevent them, including reentrancy attacks, flash loan exploits, and oracle manipulation.",
		},
		{
			ID:          "6",
			Title:       "GPT-4 Fine-tuning Masterclass",
			StartAt:     "August 8, 2025 - 11:00 AM",
			Timezone:    "UTC",
			Location:    "Remote",
			Link:        "https://lu.ma/gptfinetuning",
			Tags:        []string{"ai"},
			Description: "Master the art of fine-tuning GPT-4 for specialized applications. Learn data preparation strategies, training methodologies, and evaluation metrics for fine-tuned models.",
		},
	}
}
