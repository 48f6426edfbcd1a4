package models

// Session es el par token/usuario de una sesión iniciada. Una sesión solo
// existe si ambos campos están presentes; la ausencia de cualquiera de los
// dos significa "no autenticado".
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != ""
}
