package model

// --- USER / AUTH ---

// LoginDto is the credential payload forwarded to the remote user service.
type LoginDto struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
}

// RegisterDto carries the registration form. Birth fields are optional at
// signup and can be completed later from the profile page.
type RegisterDto struct {
	Name       string `json:"name" example:"Ayşe"`
	Email      string `json:"email" example:"user@example.com"`
	Password   string `json:"password" example:"secret"`
	BirthDate  string `json:"birthDate,omitempty" example:"1995-05-15"`
	BirthTime  string `json:"birthTime,omitempty" example:"14:30"`
	BirthPlace string `json:"birthPlace,omitempty" example:"Istanbul, Turkey"`
}

// AuthResponse is what the remote user service returns on login/register: a
// user identifier, a bearer token for the chat endpoints, and the profile
// fields the app persists locally.
type AuthResponse struct {
	UserID     string `json:"userId"`
	Token      string `json:"token"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate,omitempty"`
	BirthTime  string `json:"birthTime,omitempty"`
	BirthPlace string `json:"birthPlace,omitempty"`
}

// UserProfile is the locally persisted profile snapshot.
type UserProfile struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate,omitempty"`
	BirthTime  string `json:"birthTime,omitempty"`
	BirthPlace string `json:"birthPlace,omitempty"`
}

// ToProfile strips the bearer token off an auth response; the token is
// stored under its own key.
func (a *AuthResponse) ToProfile() UserProfile {
	return UserProfile{
		UserID:     a.UserID,
		Name:       a.Name,
		Email:      a.Email,
		BirthDate:  a.BirthDate,
		BirthTime:  a.BirthTime,
		BirthPlace: a.BirthPlace,
	}
}

// ChatReply is the AI chat answer.
type ChatReply struct {
	Response string `json:"response"`
}
