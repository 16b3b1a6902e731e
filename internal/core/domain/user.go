package domain

// Identity is the opaque subject identifier issued by the remote auth
// platform for a signed-in user. The platform owns the credential record;
// this service only ever sees the id.
type Identity struct {
	ID string `json:"id"`
}

// Session carries the bearer token issued after sign-up or sign-in.
type Session struct {
	AccessToken string `json:"access_token"`
}

// Profile is the application-side user row, linked to the auth identity by
// sharing its id. Created once at registration.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}
