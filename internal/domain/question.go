package domain

// Question es una pregunta del cuestionario, cargada una vez al inicio.
// Una respuesta afirmativa suma a cada uno de sus traits.
type Question struct {
	ID     int     `json:"id"`
	Text   string  `json:"text"`
	Traits []Trait `json:"traits"`
}
