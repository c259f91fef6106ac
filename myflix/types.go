package myflix

// Movie is a catalog entry as the server returns it. Movies are always
// fetched fresh and never mutated locally.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	Actors      []string `json:"Actors"`
	ImagePath   string   `json:"ImagePath"`
	Featured    bool     `json:"Featured"`
}

// Genre describes a movie genre.
type Genre struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Director describes a movie director.
type Director struct {
	Name string `json:"Name"`
	Bio  string `json:"Bio"`
}

// Credentials is the login payload. It is sent once and never persisted.
type Credentials struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username string `json:"Username" validate:"required,min=3,alphanum"`
	Password string `json:"Password" validate:"required,min=8"`
	Email    string `json:"Email" validate:"required,email"`
	Birthday string `json:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}

// ProfileUpdate is the payload for replacing the server-side profile.
// The server expects the full field set on PUT.
type ProfileUpdate struct {
	Username string `json:"Username" validate:"required,min=3,alphanum"`
	Password string `json:"Password" validate:"required,min=8"`
	Email    string `json:"Email" validate:"required,email"`
	Birthday string `json:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}
