package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"harmoniaAPI/internal/types/habit"
)

// ContentService serves the editorial content the product ships with: daily
// insights, onboarding habit suggestions, coach advice snippets and the meal
// catalog behind the photo analyzer. Content lives in a YAML file so it can
// be tuned without a deploy; a built-in copy is used when no file is present.
type ContentService struct {
	content contentFile
}

type contentFile struct {
	Insights           []string         `yaml:"insights"`
	FallbackAdvice     string           `yaml:"fallback_advice"`
	DefaultSuggestions []contentHabit   `yaml:"default_suggestions"`
	Suggestions        []suggestionRule `yaml:"suggestions"`
	Topics             []coachTopic     `yaml:"topics"`
	Meals              []mealTemplate   `yaml:"meals"`
}

type contentHabit struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type suggestionRule struct {
	Keywords []string       `yaml:"keywords"`
	Habits   []contentHabit `yaml:"habits"`
}

type coachTopic struct {
	Keywords []string `yaml:"keywords"`
	Advice   string   `yaml:"advice"`
}

type mealTemplate struct {
	Insights string     `yaml:"insights"`
	Foods    []mealFood `yaml:"foods"`
}

type mealFood struct {
	Name     string  `yaml:"name"`
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
}

func NewContentService(path string) (*ContentService, error) {
	data := []byte(defaultContentYAML)
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file %s: %w", path, err)
		}
		data = fileData
	}

	var content contentFile
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := content.validate(); err != nil {
		return nil, err
	}

	return &ContentService{content: content}, nil
}

func (c contentFile) validate() error {
	if len(c.Insights) == 0 {
		return errors.New("content: at least one insight is required")
	}
	if len(c.DefaultSuggestions) == 0 {
		return errors.New("content: default_suggestions must not be empty")
	}
	if c.FallbackAdvice == "" {
		return errors.New("content: fallback_advice is required")
	}
	if len(c.Meals) == 0 {
		return errors.New("content: at least one meal is required")
	}
	return nil
}

// DailyInsight picks a deterministic insight for a calendar day, so repeated
// dashboard fetches for the same day agree with each other.
func (s *ContentService) DailyInsight(day time.Time) string {
	idx := (day.Year()*366 + day.YearDay()) % len(s.content.Insights)
	return s.content.Insights[idx]
}

// SuggestHabits returns the habit starter pack for an onboarding objective.
// Matching is keyword-based; unknown objectives get the default pack.
func (s *ContentService) SuggestHabits(objective string) []habit.Suggestion {
	lowered := strings.ToLower(objective)

	for _, rule := range s.content.Suggestions {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return toSuggestions(rule.Habits)
			}
		}
	}

	return toSuggestions(s.content.DefaultSuggestions)
}

// TopicAdvice returns the advice snippet whose keywords match the message.
func (s *ContentService) TopicAdvice(message string) string {
	lowered := strings.ToLower(message)

	for _, topic := range s.content.Topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(lowered, kw) {
				return topic.Advice
			}
		}
	}

	return s.content.FallbackAdvice
}

// Meal picks a catalog meal by seed.
func (s *ContentService) Meal(seed uint32) mealTemplate {
	return s.content.Meals[int(seed)%len(s.content.Meals)]
}

func toSuggestions(habits []contentHabit) []habit.Suggestion {
	out := make([]habit.Suggestion, 0, len(habits))
	for _, h := range habits {
		out = append(out, habit.Suggestion{Name: h.Name, Icon: h.Icon})
	}
	return out
}

// defaultContentYAML keeps the server functional when no content file is
// deployed alongside it. assets/content.yaml is the maintained copy.
const defaultContentYAML = `
insights:
  - "Small habits compound. One completed habit today beats three planned for tomorrow."
  - "Hydration affects focus within hours. Keep the bottle where you can see it."
  - "A consistent wake time does more for sleep quality than a longer lie-in."
  - "Protein at breakfast keeps cravings quieter through the afternoon."
  - "Ten minutes of walking after meals helps steady your energy."

fallback_advice: "Pick one small action you can finish today and build from there. Consistency beats intensity."

default_suggestions:
  - { name: "Drink 2L of water", icon: "drop.fill" }
  - { name: "Walk 20 minutes", icon: "figure.walk" }
  - { name: "Sleep before 23h", icon: "moon.zzz.fill" }

suggestions:
  - keywords: ["sleep", "rest", "tired"]
    habits:
      - { name: "No screens after 22h", icon: "iphone.slash" }
      - { name: "Sleep before 23h", icon: "moon.zzz.fill" }
      - { name: "Morning sunlight", icon: "sun.max.fill" }
  - keywords: ["weight", "fit", "muscle", "strength"]
    habits:
      - { name: "Strength training 3x/week", icon: "dumbbell.fill" }
      - { name: "Protein with every meal", icon: "fork.knife" }
      - { name: "Walk 8000 steps", icon: "figure.walk" }
  - keywords: ["stress", "calm", "anxiety", "focus"]
    habits:
      - { name: "5 minute breathing", icon: "wind" }
      - { name: "Evening journal", icon: "book.closed.fill" }
      - { name: "Walk 20 minutes", icon: "figure.walk" }

topics:
  - keywords: ["sleep", "tired", "insomnia"]
    advice: "Aim for a regular wind-down: dim lights an hour before bed and keep your wake time fixed, weekends included."
  - keywords: ["water", "hydrat"]
    advice: "Spread intake through the day rather than catching up at night; a glass with every meal is an easy anchor."
  - keywords: ["run", "workout", "exercise", "training"]
    advice: "Alternate hard and easy days. Most of your training should feel conversational; intensity is a seasoning, not the meal."
  - keywords: ["food", "eat", "diet", "meal"]
    advice: "Build plates around protein and vegetables first. Nothing is forbidden, but the defaults you reach for decide the week."

meals:
  - insights: "Balanced plate with lean protein and complex carbs. Good post-workout option."
    foods:
      - { name: "Grilled chicken breast", calories: 220, protein: 40, carbs: 0, fat: 5 }
      - { name: "Brown rice", calories: 215, protein: 5, carbs: 45, fat: 2 }
      - { name: "Steamed broccoli", calories: 55, protein: 4, carbs: 11, fat: 0.5 }
  - insights: "Carb-forward meal. Consider adding a protein source to improve satiety."
    foods:
      - { name: "Spaghetti with tomato sauce", calories: 380, protein: 12, carbs: 72, fat: 6 }
      - { name: "Parmesan", calories: 45, protein: 4, carbs: 0, fat: 3 }
  - insights: "Light meal, high in fiber and healthy fats."
    foods:
      - { name: "Avocado toast", calories: 290, protein: 8, carbs: 30, fat: 16 }
      - { name: "Poached egg", calories: 70, protein: 6, carbs: 0, fat: 5 }
`
