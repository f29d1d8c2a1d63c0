package schema

// ContactMessageTable represents the 'contact.message' table
type ContactMessageTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	Message     string
	Status      string
	RelayStatus string
	CreatedAt   string
	RelayedAt   string
}

// ContactMessage is the schema definition for contact.message
var ContactMessage = ContactMessageTable{
	Table:       "contact.message",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	Message:     "message",
	Status:      "status",
	RelayStatus: "relaystatus",
	CreatedAt:   "createdat",
	RelayedAt:   "relayedat",
}

func (t ContactMessageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Message, t.Status, t.RelayStatus, t.CreatedAt, t.RelayedAt}
}
