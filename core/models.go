package core

import "time"

// User represents one registered LEAP account.
//
// PasswordHash lives only in the user table. Every record handed to callers,
// published to subscribers, or persisted as the current session is sanitized
// first via Sanitized().
type User struct {
	ID           string `json:"id"`
	Omang        string `json:"omang"`
	PasswordHash string `json:"passwordHash,omitempty"`

	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Age        int    `json:"age,omitempty"`

	District    string `json:"district,omitempty"`
	Village     string `json:"village,omitempty"`
	Ward        string `json:"ward,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	EducationLevel string `json:"educationLevel,omitempty"`
	Institution    string `json:"institution,omitempty"`
	FieldOfStudy   string `json:"fieldOfStudy,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`

	EmploymentStatus  string `json:"employmentStatus,omitempty"`
	CurrentEmployer   string `json:"currentEmployer,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
	YearsOfExperience string `json:"yearsOfExperience,omitempty"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Progress tracks a member's activity on the platform.
type Progress struct {
	CompletedCourses int      `json:"completedCourses"`
	EnrolledPrograms []string `json:"enrolledPrograms"`
	Points           int      `json:"points"`
}

// Sanitized returns a copy of the record with the password hash stripped,
// safe to hold in session state and return to callers.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.PasswordHash = ""
	out.Progress.EnrolledPrograms = append([]string(nil), u.Progress.EnrolledPrograms...)
	return &out
}

// State is the process-wide session snapshot consumed by the navigation
// gate and other observers. User is a sanitized record, nil while anonymous.
// Loading is true only until the initial restore from storage completes.
type State struct {
	User    *User `json:"user"`
	Loading bool  `json:"loading"`
}

// Authenticated reports whether a user is currently signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// RegisterInput contains the data submitted by the registration flow.
type RegisterInput struct {
	Omang    string `json:"omang"`
	Password string `json:"password"`

	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Age        int    `json:"age"`

	District    string `json:"district"`
	Village     string `json:"village"`
	Ward        string `json:"ward"`
	PhoneNumber string `json:"phoneNumber"`

	EducationLevel string `json:"educationLevel"`
	Institution    string `json:"institution"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationYear string `json:"graduationYear"`

	EmploymentStatus  string `json:"employmentStatus"`
	CurrentEmployer   string `json:"currentEmployer"`
	JobTitle          string `json:"jobTitle"`
	YearsOfExperience string `json:"yearsOfExperience"`
}

func (in RegisterInput) validate() error {
	if in.Omang == "" {
		return ErrOmangRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	if len(in.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(in.Password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	if in.FirstName == "" || in.LastName == "" {
		return ErrNameRequired
	}
	return nil
}

// ProfileUpdate is a partial patch applied to the current user's profile.
// Nil fields are left unchanged. Identity and credentials are not updatable
// through this path.
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Age        *int    `json:"age,omitempty"`

	District    *string `json:"district,omitempty"`
	Village     *string `json:"village,omitempty"`
	Ward        *string `json:"ward,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`

	EducationLevel *string `json:"educationLevel,omitempty"`
	Institution    *string `json:"institution,omitempty"`
	FieldOfStudy   *string `json:"fieldOfStudy,omitempty"`
	GraduationYear *string `json:"graduationYear,omitempty"`

	EmploymentStatus  *string `json:"employmentStatus,omitempty"`
	CurrentEmployer   *string `json:"currentEmployer,omitempty"`
	JobTitle          *string `json:"jobTitle,omitempty"`
	YearsOfExperience *string `json:"yearsOfExperience,omitempty"`
}

func (p ProfileUpdate) apply(u *User) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&u.FirstName, p.FirstName)
	setString(&u.MiddleName, p.MiddleName)
	setString(&u.LastName, p.LastName)
	if p.Age != nil {
		u.Age = *p.Age
	}
	setString(&u.District, p.District)
	setString(&u.Village, p.Village)
	setString(&u.Ward, p.Ward)
	setString(&u.PhoneNumber, p.PhoneNumber)
	setString(&u.EducationLevel, p.EducationLevel)
	setString(&u.Institution, p.Institution)
	setString(&u.FieldOfStudy, p.FieldOfStudy)
	setString(&u.GraduationYear, p.GraduationYear)
	setString(&u.EmploymentStatus, p.EmploymentStatus)
	setString(&u.CurrentEmployer, p.CurrentEmployer)
	setString(&u.JobTitle, p.JobTitle)
	setString(&u.YearsOfExperience, p.YearsOfExperience)
}
