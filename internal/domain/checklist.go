package domain

type ChecklistStatus string

const (
	ChecklistPending  ChecklistStatus = "pending"
	ChecklistComplete ChecklistStatus = "complete"
)

type ChecklistItem struct {
	ID          string          `json:"id,omitempty"`
	Text        string          `json:"text"`
	Status      ChecklistStatus `json:"status"`
	AddedAt     string          `json:"added_at"`
	CompletedAt string          `json:"completed_at,omitempty"`
}

// Checklist is the per-user working memory persisted as one JSON document.
type Checklist struct {
	Items     []ChecklistItem `json:"items"`
	UpdatedAt *string         `json:"updated_at"`
}

// ItemsWithStatus filters items, preserving order.
func (c Checklist) ItemsWithStatus(status ChecklistStatus) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}
