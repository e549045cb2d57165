package service

import (
	"go.uber.org/zap"

	"career-compass/internal/dataset"
	"career-compass/internal/domain"
)

// SurveyService orquesta el scoring completo: validacion, agregacion de
// traits, derivacion del codigo, resolucion de recomendaciones y ensamblado
// del resultado. Computo puro sobre el snapshot vigente, sin estado
// compartido entre requests.
type SurveyService struct {
	store      *dataset.Store
	logger     *zap.Logger
	validator  *AnswerValidator
	aggregator TraitAggregator
	deriver    CodeDeriver
	resolver   *RecommendationResolver
	education  EducationParser
}

func NewSurveyService(store *dataset.Store, logger *zap.Logger) *SurveyService {
	return &SurveyService{
		store:     store,
		logger:    logger,
		validator: NewAnswerValidator(logger),
		resolver:  NewRecommendationResolver(logger),
		education: NewEducationParser(),
	}
}

// Questions devuelve el cuestionario del snapshot vigente, en orden.
func (s *SurveyService) Questions() []domain.Question {
	return s.store.Current().Questions()
}

// Stats expone los conteos del snapshot vigente.
func (s *SurveyService) Stats() dataset.Stats {
	return s.store.Current().Stats()
}

// Score procesa un vector crudo de respuestas y devuelve el resultado
// completo. Falla con *ValidationError si el largo no coincide con la
// cantidad de preguntas y con *DataIntegrityError si el resultado quedaria
// incompleto; cualquier otro dato malformado se absorbe con fallbacks.
func (s *SurveyService) Score(answers []string) (domain.AnalysisResult, error) {
	snap := s.store.Current()

	vector, err := s.validator.Validate(answers, snap.QuestionCount())
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	raw := s.aggregator.Aggregate(vector, snap.Questions())
	normalized := s.aggregator.Normalize(raw, snap.TraitQuestionCount)
	code := s.deriver.Derive(normalized)

	profile := s.resolver.ResolveProfile(snap, code)
	industries := s.resolver.ResolveIndustries(snap, code)

	recommendations := make([]domain.IndustryRecommendation, 0, len(industries))
	for _, industry := range industries {
		recommendations = append(recommendations, domain.IndustryRecommendation{
			IndustryRecord: industry,
			Education:      s.education.Parse(industry.EducationRaw),
		})
	}

	result, err := assemble(profile, normalized, recommendations)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	s.logger.Info("survey scored",
		zap.String("code", string(code)),
		zap.String("resolved_code", string(profile.Code)),
		zap.Int("industries", len(result.Industries)),
	)
	return result, nil
}

// assemble compone el AnalysisResult y verifica el invariante de
// completitud: personality e industries presentes y no vacios. Una
// violacion es un bug de curacion/programa y se falla fuerte, al reves de
// las politicas lenientes del resto del pipeline.
func assemble(
	profile domain.PersonalityProfile,
	scores domain.TraitScores,
	industries []domain.IndustryRecommendation,
) (domain.AnalysisResult, error) {
	if profile.Code == "" {
		return domain.AnalysisResult{}, &DataIntegrityError{Reason: "personality profile missing"}
	}
	if len(scores) == 0 {
		return domain.AnalysisResult{}, &DataIntegrityError{Reason: "riasec scores missing"}
	}
	if len(industries) == 0 {
		return domain.AnalysisResult{}, &DataIntegrityError{Reason: "no industries resolved"}
	}

	return domain.AnalysisResult{
		Personality: domain.PersonalityAnalysis{
			PersonalityProfile: profile,
			RiasecScores:       scores,
		},
		Industries: industries,
	}, nil
}
