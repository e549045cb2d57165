package domain

// PersonalityCode son los dos traits dominantes, el primero manda.
// Invariante: dos caracteres RIASEC distintos.
type PersonalityCode string

// Dominant devuelve el primer trait del codigo.
func (c PersonalityCode) Dominant() Trait {
	if len(c) == 0 {
		return ""
	}
	return Trait(c[0:1])
}

// Secondary devuelve el segundo trait del codigo.
func (c PersonalityCode) Secondary() Trait {
	if len(c) < 2 {
		return ""
	}
	return Trait(c[1:2])
}

// Swapped devuelve el codigo con los traits invertidos ("RI" -> "IR").
func (c PersonalityCode) Swapped() PersonalityCode {
	if len(c) < 2 {
		return c
	}
	return PersonalityCode(string(c[1]) + string(c[0]))
}

// Valid indica si el codigo tiene dos traits RIASEC distintos.
func (c PersonalityCode) Valid() bool {
	return len(c) == 2 && c.Dominant().Valid() && c.Secondary().Valid() && c.Dominant() != c.Secondary()
}

// PersonalityProfile es la entrada curada para un codigo de dos letras.
type PersonalityProfile struct {
	Code           PersonalityCode `json:"code"`
	Role           string          `json:"type"`
	Description    string          `json:"description"`
	Interpretation string          `json:"interpretation"`
	Enjoyment      []string        `json:"enjoyment"`
	Strengths      []string        `json:"strengths"`
	IconID         string          `json:"iconId"`
}
