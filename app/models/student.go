package models

// Student represents one enrolled child. Class must match a name in the
// classes collection.
type Student struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	AdmNo      string `json:"admNo"`
	Class      string `json:"class"`
	ParentName string `json:"parentName"`
	WhatsApp   string `json:"whatsapp"`
	Contact    string `json:"contact"`
}
