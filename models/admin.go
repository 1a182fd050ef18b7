package models

// Admin is a back-office account for the storefront dashboard.
type Admin struct {
	AdminID  int    `json:"admin_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
