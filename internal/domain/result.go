package domain

// PersonalityAnalysis es el perfil resuelto mas los puntajes normalizados.
type PersonalityAnalysis struct {
	PersonalityProfile
	RiasecScores TraitScores `json:"riasecScores"`
}

// IndustryRecommendation es una industria rankeada enriquecida con la
// informacion de educacion parseada.
type IndustryRecommendation struct {
	IndustryRecord
	Education EducationInfo `json:"educationInfo"`
}

// AnalysisResult es el unico artefacto que devuelve el motor.
// Invariante: personality e industries siempre presentes y no vacios.
type AnalysisResult struct {
	Personality PersonalityAnalysis      `json:"personality"`
	Industries  []IndustryRecommendation `json:"industries"`
}
