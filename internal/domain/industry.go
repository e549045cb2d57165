package domain

// EducationDelimiter es el delimitador canonico de los campos de educacion.
// Los registros historicos con "--" se migran a este formato al cargar el
// dataset, nunca se auto-detecta en el parseo por request.
const EducationDelimiter = "//"

// IndustryRecord es una industria curada asociada a un codigo de personalidad.
// La misma industria puede aparecer bajo varios codigos (muchos a muchos).
type IndustryRecord struct {
	ID           string          `json:"id"`
	Code         PersonalityCode `json:"-"`
	Priority     int             `json:"-"`
	Name         string          `json:"name"`
	Overview     string          `json:"overview"`
	Trending     string          `json:"trending"`
	Insight      string          `json:"insight"`
	ExamplePaths []string        `json:"examplePaths"`
	EducationRaw string          `json:"education"`
}

// EducationInfo son los campos estructurados del string de educacion.
// Campos ausentes quedan como string vacio, el parseo nunca falla.
type EducationInfo struct {
	Program       string `json:"program"`
	AdmissionCode string `json:"admissionCode"`
	Institution   string `json:"institution"`
	CutoffScore   string `json:"cutoffScore"`
}

// Join reconstruye el string crudo con el delimitador canonico.
func (e EducationInfo) Join() string {
	return e.Program + EducationDelimiter + e.AdmissionCode + EducationDelimiter + e.Institution + EducationDelimiter + e.CutoffScore
}

// Empty indica si ningun campo fue poblado.
func (e EducationInfo) Empty() bool {
	return e == EducationInfo{}
}
