package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"career-compass/internal/dataset"
	"career-compass/internal/domain"
)

type stubQuestionRepo struct {
	questions []domain.Question
	err       error
}

func (s *stubQuestionRepo) ListAll(_ context.Context) ([]domain.Question, error) {
	return s.questions, s.err
}

type stubProfileRepo struct {
	profiles []domain.PersonalityProfile
	err      error
}

func (s *stubProfileRepo) ListAll(_ context.Context) ([]domain.PersonalityProfile, error) {
	return s.profiles, s.err
}

type stubIndustryRepo struct {
	industries []domain.IndustryRecord
	err        error
}

func (s *stubIndustryRepo) ListAll(_ context.Context) ([]domain.IndustryRecord, error) {
	return s.industries, s.err
}

func newTestSnapshot(
	t *testing.T,
	questions []domain.Question,
	profiles []domain.PersonalityProfile,
	industries []domain.IndustryRecord,
) *dataset.Snapshot {
	t.Helper()
	loader := dataset.NewLoader(
		&stubQuestionRepo{questions: questions},
		&stubProfileRepo{profiles: profiles},
		&stubIndustryRepo{industries: industries},
		zap.NewNop(),
	)
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("building test snapshot: %v", err)
	}
	return snap
}

// baseQuestions: seis preguntas, una por dimension RIASEC, en orden canonico.
func baseQuestions() []domain.Question {
	return []domain.Question{
		{ID: 1, Text: "Do you enjoy building things with your hands?", Traits: []domain.Trait{domain.TraitRealistic}},
		{ID: 2, Text: "Do you enjoy solving abstract problems?", Traits: []domain.Trait{domain.TraitInvestigative}},
		{ID: 3, Text: "Do you enjoy creating art or music?", Traits: []domain.Trait{domain.TraitArtistic}},
		{ID: 4, Text: "Do you enjoy helping people?", Traits: []domain.Trait{domain.TraitSocial}},
		{ID: 5, Text: "Do you enjoy leading teams?", Traits: []domain.Trait{domain.TraitEnterprising}},
		{ID: 6, Text: "Do you enjoy organizing information?", Traits: []domain.Trait{domain.TraitConventional}},
	}
}

func baseProfiles() []domain.PersonalityProfile {
	return []domain.PersonalityProfile{
		{
			Code:           "RI",
			Role:           "The Builder-Thinker",
			Description:    "Practical and analytical.",
			Interpretation: "You combine hands-on skills with curiosity.",
			Enjoyment:      []string{"Building prototypes", "Running experiments"},
			Strengths:      []string{"Precision", "Persistence"},
			IconID:         "3",
		},
		{
			Code:           "SE",
			Role:           "The Mentor-Leader",
			Description:    "People-oriented and persuasive.",
			Interpretation: "You help others while driving initiatives.",
			Enjoyment:      []string{"Coaching", "Public speaking"},
			Strengths:      []string{"Empathy", "Influence"},
			IconID:         "7",
		},
	}
}

func baseIndustries() []domain.IndustryRecord {
	return []domain.IndustryRecord{
		{
			ID:           "ind-eng",
			Code:         "RI",
			Priority:     2,
			Name:         "Engineering",
			Overview:     "Design and build systems.",
			Trending:     "Green energy is growing fast.",
			Insight:      "Strong demand for practical problem solvers.",
			ExamplePaths: []string{"Mechanical Engineer", "Civil Engineer"},
			EducationRaw: "Engineering//JS1001//HKUST//5.5",
		},
		{
			ID:           "ind-data",
			Code:         "RI",
			Priority:     1,
			Name:         "Data Science",
			Overview:     "Extract insight from data.",
			Trending:     "AI adoption keeps accelerating.",
			Insight:      "Analytical minds thrive here.",
			ExamplePaths: []string{"Data Analyst", "ML Engineer"},
			EducationRaw: "Data Science//JS1002//HKU//6.0",
		},
		{
			ID:           "ind-edu",
			Code:         "SE",
			Priority:     1,
			Name:         "Education",
			Overview:     "Teach and develop people.",
			Trending:     "Lifelong learning expands the field.",
			Insight:      "Communicators are always needed.",
			ExamplePaths: []string{"Teacher", "Curriculum Designer"},
			EducationRaw: "Education//JS2001//CUHK//4.8",
		},
	}
}

func yesNoAnswers(yes ...int) []string {
	answers := make([]string, 6)
	for i := range answers {
		answers[i] = "no"
	}
	for _, idx := range yes {
		answers[idx] = "yes"
	}
	return answers
}
