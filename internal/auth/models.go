package auth

// User is one registered account. Email is the natural key; the bcrypt hash
// never leaves the server (excluded from every JSON shape).
type User struct {
	Email        string  `gorm:"primaryKey" json:"email"`
	FullName     string  `json:"fullname"`
	PasswordHash string  `json:"-"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

func (User) TableName() string { return "app_agri.users" }
