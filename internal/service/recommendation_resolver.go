package service

import (
	"go.uber.org/zap"

	"career-compass/internal/dataset"
	"career-compass/internal/domain"
)

// RecommendationResolver busca el perfil curado y las industrias asociadas
// a un codigo de personalidad. Lectura pura, sin efectos; toda degradacion
// se resuelve aca y solo es visible por logging, nunca en la respuesta.
type RecommendationResolver struct {
	logger *zap.Logger
}

func NewRecommendationResolver(logger *zap.Logger) *RecommendationResolver {
	return &RecommendationResolver{logger: logger}
}

// ResolveProfile aplica la cadena de degradacion: codigo exacto, codigo
// invertido, cualquier perfil cuyo codigo empiece por el trait dominante
// (gana el codigo lexicograficamente menor) y por ultimo un perfil
// generico fijo. El espacio de codigos es chico y acotado (30 permutaciones),
// un perfil faltante jamas llega al usuario como error.
func (r *RecommendationResolver) ResolveProfile(snap *dataset.Snapshot, code domain.PersonalityCode) domain.PersonalityProfile {
	if profile, ok := snap.Profile(code); ok {
		return profile
	}

	if profile, ok := snap.Profile(code.Swapped()); ok {
		r.logger.Info("profile resolved via swapped code",
			zap.String("derived", string(code)),
			zap.String("resolved", string(code.Swapped())),
		)
		return profile
	}

	dominant := code.Dominant()
	for _, candidate := range snap.ProfileCodes() {
		if candidate.Dominant() == dominant {
			profile, _ := snap.Profile(candidate)
			r.logger.Info("profile resolved via dominant trait",
				zap.String("derived", string(code)),
				zap.String("resolved", string(candidate)),
			)
			return profile
		}
	}

	r.logger.Warn("no curated profile for code, using generic profile", zap.String("derived", string(code)))
	return genericProfile(code)
}

// ResolveIndustries devuelve las industrias del codigo resuelto, ya
// rankeadas por prioridad (desempate por nombre). Misma cadena de
// degradacion que el perfil; si nada matchea se devuelve una industria
// generica para sostener el invariante de resultado no vacio.
func (r *RecommendationResolver) ResolveIndustries(snap *dataset.Snapshot, code domain.PersonalityCode) []domain.IndustryRecord {
	if list := snap.Industries(code); len(list) > 0 {
		return list
	}

	if list := snap.Industries(code.Swapped()); len(list) > 0 {
		r.logger.Info("industries resolved via swapped code", zap.String("derived", string(code)))
		return list
	}

	dominant := code.Dominant()
	for _, candidate := range snap.IndustryCodes() {
		if candidate.Dominant() == dominant {
			if list := snap.Industries(candidate); len(list) > 0 {
				r.logger.Info("industries resolved via dominant trait",
					zap.String("derived", string(code)),
					zap.String("resolved", string(candidate)),
				)
				return list
			}
		}
	}

	r.logger.Warn("no curated industries for code, using generic industry", zap.String("derived", string(code)))
	return []domain.IndustryRecord{genericIndustry(code)}
}

// genericProfile es el ultimo eslabon de la cadena de fallback.
func genericProfile(code domain.PersonalityCode) domain.PersonalityProfile {
	return domain.PersonalityProfile{
		Code:           code,
		Role:           "Default Type",
		Description:    "We couldn't determine your specific personality type based on your answers.",
		Interpretation: "Your answers indicate a unique combination of interests and preferences.",
		Enjoyment: []string{
			"Exploring different career options",
			"Learning about your strengths and interests",
		},
		Strengths: []string{
			"Adaptability",
			"Unique perspective",
		},
		IconID: "1",
	}
}

// genericIndustry sostiene industries no vacio cuando la curacion no cubre
// el codigo.
func genericIndustry(code domain.PersonalityCode) domain.IndustryRecord {
	return domain.IndustryRecord{
		ID:       "generic",
		Code:     code,
		Name:     "General Career Path",
		Overview: "Based on your personality type, you might enjoy a variety of career paths.",
		Trending: "Many fields are growing and offer opportunities for someone with your interests.",
		Insight:  "Consider exploring different industries to find what resonates with your personal values and strengths.",
		ExamplePaths: []string{
			"Research careers that match your interests",
			"Speak with a career counselor",
			"Try internships in different fields",
		},
	}
}
