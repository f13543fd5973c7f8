package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"_id"`
	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SkillsToJSON packs a skill list into a JSONB column value.
func SkillsToJSON(skills []string) datatypes.JSON {
	if skills == nil {
		skills = []string{}
	}
	raw, _ := json.Marshal(skills)
	return datatypes.JSON(raw)
}

// SkillsFromJSON unpacks a JSONB skills column. Malformed or empty values
// decode to an empty list.
func SkillsFromJSON(raw datatypes.JSON) []string {
	var skills []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &skills); err != nil {
		return []string{}
	}
	return skills
}
