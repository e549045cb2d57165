package service

import (
	"strings"

	"career-compass/internal/domain"
)

// EducationParser parte el string de educacion de una industria en campos
// estructurados. La info de educacion es suplementaria: el parseo degrada
// a datos parciales, nunca falla.
type EducationParser struct {
	delimiter string
}

func NewEducationParser() EducationParser {
	return EducationParser{delimiter: domain.EducationDelimiter}
}

// Parse separa por el delimitador canonico y recorta espacios. Los campos
// finales ausentes quedan como string vacio. El loader ya migro los
// registros historicos, aca no se auto-detecta formato.
func (p EducationParser) Parse(raw string) domain.EducationInfo {
	var info domain.EducationInfo
	if strings.TrimSpace(raw) == "" {
		return info
	}

	parts := strings.Split(raw, p.delimiter)
	fields := [...]*string{&info.Program, &info.AdmissionCode, &info.Institution, &info.CutoffScore}
	for i, part := range parts {
		if i >= len(fields) {
			break
		}
		*fields[i] = strings.TrimSpace(part)
	}
	return info
}
