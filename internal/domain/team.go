package domain

import "time"

// Team - запись справочника команд. Ядро только читает её.
type Team struct {
	ID          int64
	Name        string
	Location    string
	SkillLevel  string
	Description string
	CreatedAt   time.Time
}
