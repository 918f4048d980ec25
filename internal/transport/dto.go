package transport

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Dates cross the wire as "2006-01-02" strings, matching what the forms send.
type UpdateProfileRequest struct {
	Gender *string `json:"gender" validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
	DOB    *string `json:"dob"    validate:"omitempty"`
}

type CreateCourseRequest struct {
	Name        string `json:"name"        validate:"required"`
	SerialNo    string `json:"serialno"    validate:"required"`
	Duration    string `json:"duration"    validate:"required"`
	Eligibility string `json:"eligibility"`
	CourseFee   string `json:"coursefee"   validate:"required"`
	Scholarship string `json:"scholarship" validate:"required"`
	Details     string `json:"details"`
}

type CreateStudentRequest struct {
	FullName   string `json:"fullName"`
	WhatsApp   string `json:"whatsapp"`
	DOB        string `json:"dob"      validate:"required"`
	Address    string `json:"address"  validate:"required"`
	Course     string `json:"course"   validate:"required"`
	FatherName string `json:"fname"    validate:"required"`
	MotherName string `json:"mname"    validate:"required"`
	Religion   string `json:"religion" validate:"omitempty,oneof=Hinduism Islam Christianity Sikhism Buddhism Jainism Other 'Prefer not to say'"`
	Session    string `json:"session"  validate:"required"`
}

type UpdateStudentRequest struct {
	FullName   *string `json:"fullName"`
	WhatsApp   *string `json:"whatsapp"`
	DOB        *string `json:"dob"`
	Address    *string `json:"address"`
	Course     *string `json:"course"`
	FatherName *string `json:"fname"`
	MotherName *string `json:"mname"`
	Religion   *string `json:"religion"`
	Session    *string `json:"session"`
}

type CreateCertificateRequest struct {
	Name           string `json:"name"           validate:"required"`
	FatherName     string `json:"fathername"     validate:"required"`
	MotherName     string `json:"mothername"     validate:"required"`
	Course         string `json:"course"`
	RegistrationNo string `json:"registrationno" validate:"required"`
	Address        string `json:"address"        validate:"required"`
	CenterName     string `json:"centername"`
	Grade          string `json:"grade"`
}

type CreateCenterRequest struct {
	Name            string `json:"name"            validate:"required"`
	Address         string `json:"address"         validate:"required"`
	CenterCode      string `json:"centercode"      validate:"required"`
	Qualification   string `json:"qualification"`
	SeatingCapacity string `json:"seatingcapacity" validate:"required"`
	Strength        string `json:"strength"        validate:"required"`
	NoOfSystems     string `json:"noofsystem"`
	NoOfClassrooms  string `json:"noofclassroom"`
	Office          string `json:"office"          validate:"omitempty,oneof=yes no"`
	ReceptionDesk   string `json:"receptiondesk"   validate:"omitempty,oneof=yes no"`
	Toilet          string `json:"toilet"          validate:"omitempty,oneof=yes no"`
	Library         string `json:"library"         validate:"omitempty,oneof=yes no"`
	Website         string `json:"website"`
	ContactNo       string `json:"contactno"       validate:"required"`
}

// PublicProfile is the limited field set exposed by GET /api/profile/:id.
type PublicProfile struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Gender    string  `json:"gender"`
	DOB       *string `json:"dob"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
}
