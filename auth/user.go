package auth

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"unique"`
	Password string
	Role     string
}

func CreateUser(db *gorm.DB, username, password, role string) error {
	if role == "" {
		role = RoleReporter
	}
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := User{Username: username, Password: string(hashedPassword), Role: role}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	return nil
}

// returns the user when the username/password pair checks out
func Authenticate(db *gorm.DB, username, password string) (User, error) {
	var user User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return User{}, err
	}
	return user, nil
}
