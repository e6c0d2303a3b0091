package credential

type Type string

const (
	TypeCertification Type = "certification"
	TypeCertificate   Type = "certificate"
	TypeCourse        Type = "course"
	TypeDegree        Type = "degree"
	TypeNano          Type = "nano"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCertification, TypeCertificate, TypeCourse, TypeDegree, TypeNano:
		return true
	default:
		return false
	}
}

type Level string

const (
	LevelFoundation   Level = "foundation"
	LevelAssociate    Level = "associate"
	LevelProfessional Level = "professional"
	LevelExpert       Level = "expert"
)

func (l Level) Valid() bool {
	switch l {
	case LevelFoundation, LevelAssociate, LevelProfessional, LevelExpert:
		return true
	default:
		return false
	}
}

type Credential struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Type        Type   `json:"type"`
	Level       Level  `json:"level"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type SkillLink struct {
	CredentialID string `json:"credentialId"`
	SkillID      string `json:"skillId"`
}
