package model

// Workflow is a saved agent-flow document from the visual designer. Nodes and
// edges are stored as opaque JSON; the backend never interprets them.
type Workflow struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Nodes       string `gorm:"type:json" json:"nodes"`
	Edges       string `gorm:"type:json" json:"edges"`
}

func (Workflow) TableName() string {
	return "workflows"
}
