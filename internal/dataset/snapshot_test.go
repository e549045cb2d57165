package dataset

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"career-compass/internal/domain"
)

type fakeQuestionRepo struct {
	questions []domain.Question
	err       error
}

func (f *fakeQuestionRepo) ListAll(_ context.Context) ([]domain.Question, error) {
	return f.questions, f.err
}

type fakeProfileRepo struct {
	profiles []domain.PersonalityProfile
	err      error
}

func (f *fakeProfileRepo) ListAll(_ context.Context) ([]domain.PersonalityProfile, error) {
	return f.profiles, f.err
}

type fakeIndustryRepo struct {
	industries []domain.IndustryRecord
	err        error
}

func (f *fakeIndustryRepo) ListAll(_ context.Context) ([]domain.IndustryRecord, error) {
	return f.industries, f.err
}

func testQuestions() []domain.Question {
	return []domain.Question{
		{ID: 1, Text: "q1", Traits: []domain.Trait{domain.TraitRealistic}},
		{ID: 2, Text: "q2", Traits: []domain.Trait{domain.TraitRealistic, domain.TraitInvestigative}},
		{ID: 3, Text: "q3", Traits: []domain.Trait{domain.TraitSocial}},
	}
}

func loadSnapshot(t *testing.T, questions []domain.Question, profiles []domain.PersonalityProfile, industries []domain.IndustryRecord) *Snapshot {
	t.Helper()
	loader := NewLoader(
		&fakeQuestionRepo{questions: questions},
		&fakeProfileRepo{profiles: profiles},
		&fakeIndustryRepo{industries: industries},
		zap.NewNop(),
	)
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return snap
}

func TestLoader_FailsWithoutQuestions(t *testing.T) {
	loader := NewLoader(&fakeQuestionRepo{}, &fakeProfileRepo{}, &fakeIndustryRepo{}, zap.NewNop())
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatalf("expected error for empty question table")
	}
}

func TestLoader_PropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("boom")
	loader := NewLoader(
		&fakeQuestionRepo{questions: testQuestions()},
		&fakeProfileRepo{err: boom},
		&fakeIndustryRepo{},
		zap.NewNop(),
	)
	if _, err := loader.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestLoader_MigratesLegacyEducationDelimiter(t *testing.T) {
	industries := []domain.IndustryRecord{
		{ID: "a", Code: "RI", Name: "Legacy", EducationRaw: "Nursing--JS5678--PolyU--4.2"},
		{ID: "b", Code: "RI", Name: "Modern", EducationRaw: "Engineering//JS1001//HKUST//5.5"},
	}
	snap := loadSnapshot(t, testQuestions(), nil, industries)

	got := snap.Industries("RI")
	byName := map[string]string{}
	for _, ind := range got {
		byName[ind.Name] = ind.EducationRaw
	}
	if byName["Legacy"] != "Nursing//JS5678//PolyU//4.2" {
		t.Fatalf("expected legacy delimiter migrated, got %q", byName["Legacy"])
	}
	if byName["Modern"] != "Engineering//JS1001//HKUST//5.5" {
		t.Fatalf("expected canonical record untouched, got %q", byName["Modern"])
	}
}

func TestSnapshot_IndustriesSortedAndDeduped(t *testing.T) {
	industries := []domain.IndustryRecord{
		{ID: "c", Code: "RI", Priority: 2, Name: "Construction"},
		{ID: "a", Code: "RI", Priority: 1, Name: "Aviation"},
		{ID: "b", Code: "RI", Priority: 1, Name: "aerospace"},
		{ID: "dup", Code: "RI", Priority: 3, Name: "AVIATION"},
	}
	snap := loadSnapshot(t, testQuestions(), nil, industries)

	got := snap.Industries("RI")
	if len(got) != 3 {
		t.Fatalf("expected dedup by name, got %d entries", len(got))
	}
	// Prioridad 1 primero, desempate por nombre case-insensitive.
	if got[0].Name != "aerospace" || got[1].Name != "Aviation" || got[2].Name != "Construction" {
		t.Fatalf("unexpected order: [%s, %s, %s]", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestSnapshot_NormalizesProfileCodes(t *testing.T) {
	profiles := []domain.PersonalityProfile{{Code: " ri ", Role: "The Builder-Thinker"}}
	snap := loadSnapshot(t, testQuestions(), profiles, nil)

	if _, ok := snap.Profile("RI"); !ok {
		t.Fatalf("expected profile reachable under normalized code")
	}
	codes := snap.ProfileCodes()
	if len(codes) != 1 || codes[0] != "RI" {
		t.Fatalf("expected [RI], got %v", codes)
	}
}

func TestSnapshot_TraitQuestionCount(t *testing.T) {
	snap := loadSnapshot(t, testQuestions(), nil, nil)

	if snap.TraitQuestionCount(domain.TraitRealistic) != 2 {
		t.Fatalf("expected R tagged twice, got %d", snap.TraitQuestionCount(domain.TraitRealistic))
	}
	if snap.TraitQuestionCount(domain.TraitInvestigative) != 1 {
		t.Fatalf("expected I tagged once, got %d", snap.TraitQuestionCount(domain.TraitInvestigative))
	}
	if snap.TraitQuestionCount(domain.TraitConventional) != 0 {
		t.Fatalf("expected C untagged, got %d", snap.TraitQuestionCount(domain.TraitConventional))
	}
}

func TestStore_ReplaceKeepsOldSnapshotUsable(t *testing.T) {
	first := loadSnapshot(t, testQuestions(), nil, nil)
	second := loadSnapshot(t, testQuestions()[:1], nil, nil)

	store := NewStore(first)
	held := store.Current()

	previous := store.Replace(second)
	if previous != first {
		t.Fatalf("expected Replace to return previous snapshot")
	}
	if store.Current() != second {
		t.Fatalf("expected new snapshot published")
	}
	// La referencia tomada antes del swap sigue sirviendo sin lecturas rotas.
	if held.QuestionCount() != 3 {
		t.Fatalf("expected held reference unchanged, got %d", held.QuestionCount())
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct snapshot ids")
	}
}
