package models

import "time"

// User is the authentication principal. RefreshToken is a single slot:
// it holds the most recently issued refresh token or NULL, so issuing a
// new one implicitly invalidates every older copy.
type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"not null"                 json:"username"`
	Email        string     `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string     `gorm:"not null"                 json:"-"`
	Role         string     `gorm:"not null;default:user"    json:"role"`
	Gender       string     `gorm:"default:'Prefer not to say'" json:"gender"`
	DOB          *time.Time `json:"dob"`

	RefreshToken *string `json:"-"`

	ResetPasswordToken  *string    `json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Course struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	SerialNo    string    `gorm:"uniqueIndex;not null"     json:"serialno"`
	Duration    string    `gorm:"not null"                 json:"duration"`
	Eligibility string    `json:"eligibility"`
	CourseFee   string    `gorm:"not null"                 json:"coursefee"`
	Scholarship string    `gorm:"not null"                 json:"scholarship"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Student struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `json:"fullName"`
	WhatsApp   string    `json:"whatsapp"`
	DOB        time.Time `gorm:"not null"                 json:"dob"`
	Address    string    `gorm:"not null"                 json:"address"`
	Course     string    `gorm:"not null"                 json:"course"`
	FatherName string    `gorm:"not null"                 json:"fname"`
	MotherName string    `gorm:"not null"                 json:"mname"`
	Religion   string    `json:"religion"`
	Session    string    `gorm:"not null"                 json:"session"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Certificate struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null"                 json:"name"`
	FatherName     string    `gorm:"not null"                 json:"fathername"`
	MotherName     string    `gorm:"not null"                 json:"mothername"`
	Course         string    `json:"course"`
	RegistrationNo string    `gorm:"uniqueIndex;not null"     json:"registrationno"`
	Address        string    `gorm:"not null"                 json:"address"`
	CenterName     string    `json:"centername"`
	Grade          string    `json:"grade"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CenterAffiliation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null"                 json:"name"`
	Address         string    `gorm:"not null"                 json:"address"`
	CenterCode      string    `gorm:"uniqueIndex;not null"     json:"centercode"`
	Qualification   string    `json:"qualification"`
	SeatingCapacity string    `gorm:"not null"                 json:"seatingcapacity"`
	Strength        string    `gorm:"not null"                 json:"strength"`
	NoOfSystems     string    `json:"noofsystem"`
	NoOfClassrooms  string    `json:"noofclassroom"`
	Office          string    `gorm:"default:no"               json:"office"`
	ReceptionDesk   string    `gorm:"default:no"               json:"receptiondesk"`
	Toilet          string    `gorm:"default:no"               json:"toilet"`
	Library         string    `gorm:"default:no"               json:"library"`
	Website         string    `json:"website"`
	ContactNo       string    `gorm:"not null"                 json:"contactno"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
