// Package auth is the admin sign-in stub for the storefront dashboard.
package auth

import "storefront-service/models"

// AdminDirectory answers sign-in lookups against a fixed admin list.
type AdminDirectory struct {
	admins []models.Admin
}

// NewSeededDirectory returns the directory with the default admin
// account. Credentials are placeholders until a real identity backend
// replaces this stub.
func NewSeededDirectory() *AdminDirectory {
	return &AdminDirectory{
		admins: []models.Admin{
			{AdminID: 1, Name: "Shop Owner", Email: "owner@fadebarber.shop", Password: "change-me"},
		},
	}
}

// FindAdmin returns the admin matching both email and password, or
// false if no account matches.
func (d *AdminDirectory) FindAdmin(email, password string) (models.Admin, bool) {
	for _, admin := range d.admins {
		if admin.Email == email && admin.Password == password {
			return admin, true
		}
	}
	return models.Admin{}, false
}
