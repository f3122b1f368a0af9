package models

// SchoolInfo is the singleton header block printed on invoices.
type SchoolInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	Website  string `json:"website"`
}
